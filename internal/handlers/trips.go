package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/etsiinf/carpool-backend/internal/store"
	"github.com/gin-gonic/gin"
)

// GetTrips lists all trips, or those of ?driver_id=.
func GetTrips(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			trips []models.Trip
			err   error
		)
		if driverID := c.Query("driver_id"); driverID != "" {
			trips, err = s.Trips.ByDriver(ctx, driverID)
		} else {
			trips, err = s.Trips.All(ctx)
		}
		if err != nil {
			respond(c, models.ServerError("Failed to fetch trips"))
			return
		}
		if len(trips) == 0 {
			respond(c, models.NotFound("No trips found"))
			return
		}
		respond(c, models.OK("Success retrieving all data", trips))
	}
}

// GetTrip retrieves a single trip by id
func GetTrip(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("tripId")

		trip, err := s.Trips.GetByID(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			respond(c, models.NotFound("No trips found"))
			return
		}
		if err != nil {
			respond(c, models.ServerError("Failed to fetch trip"))
			return
		}
		respond(c, models.OK("Success retrieving data from trip", trip))
	}
}

// CreateTrip creates a trip; no cross-entity validation applies.
func CreateTrip(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trip models.Trip
		if err := c.ShouldBindJSON(&trip); err != nil {
			respond(c, models.BadRequest(err.Error()))
			return
		}

		trip.ID = ""
		if _, err := s.Trips.Insert(c.Request.Context(), &trip); err != nil {
			respond(c, models.ServerError("Failed to create trip"))
			return
		}
		respond(c, models.OK("Success saving data", trip))
	}
}

// UpdateTrip overwrites all fields of an existing trip.
func UpdateTrip(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("tripId")

		exists, err := s.Trips.Exists(ctx, id)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch trip"))
			return
		}
		if !exists {
			respond(c, models.NotFound(fmt.Sprintf("No trip with id %s found", id)))
			return
		}

		var trip models.Trip
		if err := c.ShouldBindJSON(&trip); err != nil {
			respond(c, models.BadRequest(err.Error()))
			return
		}

		if err := s.Trips.Update(ctx, id, &trip); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respond(c, models.NotFound(fmt.Sprintf("No trip with id %s found", id)))
				return
			}
			respond(c, models.ServerError("Failed to update trip"))
			return
		}
		respond(c, models.OK("Success updating data", trip))
	}
}

// DeleteTrip removes a trip and the bookings referencing it.
func DeleteTrip(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("tripId")

		exists, err := s.Trips.Exists(ctx, id)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch trip"))
			return
		}
		if !exists {
			respond(c, models.NotFound(fmt.Sprintf("No trip with id %s found", id)))
			return
		}

		if err := cascadeDeleteTrip(ctx, s, id); err != nil {
			respond(c, models.ServerError("Failed to delete trip"))
			return
		}
		respond(c, models.OK("Success deleting data", nil))
	}
}

// cascadeDeleteTrip deletes a trip's bookings, then the trip itself.
func cascadeDeleteTrip(ctx context.Context, s *store.Stores, tripID string) error {
	bookings, err := s.Bookings.ByTrip(ctx, tripID)
	if err != nil {
		return err
	}
	for _, booking := range bookings {
		if err := s.Bookings.Delete(ctx, booking.ID); err != nil {
			return err
		}
	}
	return s.Trips.Delete(ctx, tripID)
}
