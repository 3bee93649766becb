package handlers

import (
	"errors"
	"fmt"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/etsiinf/carpool-backend/internal/store"
	"github.com/gin-gonic/gin"
)

// GetReview retrieves one review, scoped to the driver in the path.
func GetReview(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		id := c.Param("id")

		review, err := s.Reviews.GetByID(c.Request.Context(), id)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			respond(c, models.ServerError("Failed to fetch review"))
			return
		}
		if review == nil || review.DriverID != userID {
			respond(c, models.NotFound(fmt.Sprintf("No review found with id %s for user %s", id, userID)))
			return
		}
		respond(c, models.OK("Success retrieving data from review", review))
	}
}

// GetUserReviews lists the reviews a user received as a driver
func GetUserReviews(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		reviews, err := s.Reviews.ByDriver(c.Request.Context(), userID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch reviews"))
			return
		}
		if len(reviews) == 0 {
			respond(c, models.NotFound("No reviews found"))
			return
		}
		respond(c, models.OK("Success retrieving data from reviews", reviews))
	}
}

// CreateReview validates the reviewed driver and the reviewer, then
// persists the review.
func CreateReview(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := c.Param("userId")

		var review models.Review
		if err := c.ShouldBindJSON(&review); err != nil {
			respond(c, models.BadRequest(err.Error()))
			return
		}

		if userID != review.DriverID {
			respond(c, models.BadRequest("The users don't match"))
			return
		}
		driverExists, err := s.Users.Exists(ctx, userID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}
		if !driverExists {
			respond(c, models.BadRequest("Unknown user"))
			return
		}
		reviewerExists, err := s.Users.Exists(ctx, review.ReviewerID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}
		if !reviewerExists {
			respond(c, models.BadRequest("Unknown reviewer"))
			return
		}
		if !models.ValidRating(review.Rating) {
			respond(c, models.BadRequest("Incorrect rating value"))
			return
		}

		review.ID = ""
		if _, err := s.Reviews.Insert(ctx, &review); err != nil {
			respond(c, models.ServerError("Failed to create review"))
			return
		}
		respond(c, models.OK("Success saving data", review))
	}
}

// UpdateReview re-validates the review's references and overwrites it.
func UpdateReview(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := c.Param("userId")
		id := c.Param("id")

		reviewExists, err := s.Reviews.Exists(ctx, id)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch review"))
			return
		}
		if !reviewExists {
			respond(c, models.NotFound(fmt.Sprintf("No review with id %s found", id)))
			return
		}

		var review models.Review
		if err := c.ShouldBindJSON(&review); err != nil {
			respond(c, models.BadRequest(err.Error()))
			return
		}

		if userID != review.DriverID {
			respond(c, models.BadRequest("The users don't match"))
			return
		}
		driverExists, err := s.Users.Exists(ctx, userID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}
		if !driverExists {
			respond(c, models.BadRequest("Unknown user"))
			return
		}
		reviewerExists, err := s.Users.Exists(ctx, review.ReviewerID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}
		if !reviewerExists {
			respond(c, models.BadRequest("Unknown reviewer"))
			return
		}
		if !models.ValidRating(review.Rating) {
			respond(c, models.BadRequest("Incorrect rating value"))
			return
		}

		if err := s.Reviews.Update(ctx, id, &review); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respond(c, models.NotFound(fmt.Sprintf("No review with id %s found", id)))
				return
			}
			respond(c, models.ServerError("Failed to update review"))
			return
		}
		respond(c, models.OK("Success updating data", review))
	}
}

// DeleteReview removes one review; reviews cascade into nothing.
func DeleteReview(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("id")

		exists, err := s.Reviews.Exists(ctx, id)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch review"))
			return
		}
		if !exists {
			respond(c, models.NotFound(fmt.Sprintf("No review with id %s found", id)))
			return
		}
		if err := s.Reviews.Delete(ctx, id); err != nil {
			respond(c, models.ServerError("Failed to delete review"))
			return
		}
		respond(c, models.OK("Success deleting data", nil))
	}
}
