package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/etsiinf/carpool-backend/internal/services"
	"github.com/etsiinf/carpool-backend/internal/store"
	"github.com/gin-gonic/gin"
)

// GetUsers lists all users, or those whose name contains ?name=.
func GetUsers(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			users []models.User
			err   error
		)
		if name := c.Query("name"); name != "" {
			users, err = s.Users.SearchByName(ctx, name)
		} else {
			users, err = s.Users.All(ctx)
		}
		if err != nil {
			respond(c, models.ServerError("Failed to fetch users"))
			return
		}
		if len(users) == 0 {
			respond(c, models.NotFound("No users found"))
			return
		}
		respond(c, models.OK("Success retrieving all data", users))
	}
}

// GetUser retrieves a single user by id
func GetUser(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("userId")

		user, err := s.Users.GetByID(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			respond(c, models.NotFound("No users found"))
			return
		}
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}
		respond(c, models.OK("Success retrieving data from user", user))
	}
}

// CreateUser creates a user; no cross-entity validation applies.
func CreateUser(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			respond(c, models.BadRequest(err.Error()))
			return
		}

		if err := user.HashPassword(); err != nil {
			respond(c, models.ServerError("Failed to hash password"))
			return
		}

		user.ID = ""
		if _, err := s.Users.Insert(c.Request.Context(), &user); err != nil {
			respond(c, models.ServerError("Failed to create user"))
			return
		}
		respond(c, models.OK("Success saving data", user))
	}
}

// UpdateUser overwrites all fields of an existing user.
func UpdateUser(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("userId")

		exists, err := s.Users.Exists(ctx, id)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}
		if !exists {
			respond(c, models.NotFound(fmt.Sprintf("No user with id %s found", id)))
			return
		}

		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			respond(c, models.BadRequest(err.Error()))
			return
		}
		if err := user.HashPassword(); err != nil {
			respond(c, models.ServerError("Failed to hash password"))
			return
		}

		if err := s.Users.Update(ctx, id, &user); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respond(c, models.NotFound(fmt.Sprintf("No user with id %s found", id)))
				return
			}
			respond(c, models.ServerError("Failed to update user"))
			return
		}
		respond(c, models.OK("Success updating data", user))
	}
}

// DeleteUser removes a user and everything referencing it.
func DeleteUser(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("userId")

		exists, err := s.Users.Exists(ctx, id)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}
		if !exists {
			respond(c, models.NotFound(fmt.Sprintf("No user with id %s found", id)))
			return
		}

		if err := cascadeDeleteUser(ctx, s, id); err != nil {
			respond(c, models.ServerError("Failed to delete user data"))
			return
		}
		if err := s.Users.Delete(ctx, id); err != nil {
			respond(c, models.ServerError("Failed to delete user"))
			return
		}
		respond(c, models.OK("Success deleting data", nil))
	}
}

// cascadeDeleteUser removes everything hanging off a user: their bookings,
// the reviews they received as a driver, and their trips, each trip taking
// its own bookings with it. Steps run sequentially without a transaction,
// but every step is idempotent, so re-issuing the delete after a partial
// failure finishes the job.
func cascadeDeleteUser(ctx context.Context, s *store.Stores, userID string) error {
	bookings, err := s.Bookings.ByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, booking := range bookings {
		if err := s.Bookings.Delete(ctx, booking.ID); err != nil {
			return err
		}
	}

	reviews, err := s.Reviews.ByDriver(ctx, userID)
	if err != nil {
		return err
	}
	for _, review := range reviews {
		if err := s.Reviews.Delete(ctx, review.ID); err != nil {
			return err
		}
	}

	trips, err := s.Trips.ByDriver(ctx, userID)
	if err != nil {
		return err
	}
	for _, trip := range trips {
		if err := cascadeDeleteTrip(ctx, s, trip.ID); err != nil {
			return err
		}
	}
	return nil
}

// UploadAvatar stores a profile picture and records its URL on the user.
func UploadAvatar(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("userId")

		user, err := s.Users.GetByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			respond(c, models.NotFound(fmt.Sprintf("No user with id %s found", id)))
			return
		}
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}

		file, err := c.FormFile("avatar")
		if err != nil {
			respond(c, models.BadRequest("Avatar file is required"))
			return
		}

		url, err := services.UploadAvatar(file)
		if err != nil {
			respond(c, models.ServerError("Failed to store avatar"))
			return
		}

		user.AvatarURL = url
		if err := s.Users.Update(ctx, id, user); err != nil {
			respond(c, models.ServerError("Failed to update user"))
			return
		}
		respond(c, models.OK("Success saving data", user))
	}
}
