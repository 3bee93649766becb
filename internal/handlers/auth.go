package handlers

import (
	"errors"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/etsiinf/carpool-backend/internal/store"
	"github.com/etsiinf/carpool-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	EmailAddress string `json:"email_address" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
}

// Login checks the credentials and issues a JWT for the websocket route.
func Login(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond(c, models.BadRequest(err.Error()))
			return
		}

		user, err := s.Users.GetByEmail(c.Request.Context(), input.EmailAddress)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(401, gin.H{"error": "Invalid credentials"})
				return
			}
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}

		if err := user.CheckPassword(input.Password); err != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateToken(user)
		if err != nil {
			respond(c, models.ServerError("Failed to generate token"))
			return
		}

		respond(c, models.OK("Success logging in", gin.H{
			"token": token,
			"user":  user,
		}))
	}
}
