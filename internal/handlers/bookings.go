package handlers

import (
	"errors"
	"fmt"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/etsiinf/carpool-backend/internal/services"
	"github.com/etsiinf/carpool-backend/internal/store"
	"github.com/gin-gonic/gin"
)

// GetBooking retrieves one booking, scoped to the user in the path.
func GetBooking(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		id := c.Param("id")

		booking, err := s.Bookings.GetByID(c.Request.Context(), id)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			respond(c, models.ServerError("Failed to fetch booking"))
			return
		}
		if booking == nil || booking.UserID != userID {
			respond(c, models.NotFound(fmt.Sprintf("No booking found with id %s for user %s", id, userID)))
			return
		}
		respond(c, models.OK("Success retrieving data from booking", booking))
	}
}

// GetUserBookings lists all bookings of a user
func GetUserBookings(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		bookings, err := s.Bookings.ByUser(c.Request.Context(), userID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch bookings"))
			return
		}
		if len(bookings) == 0 {
			respond(c, models.NotFound("No bookings found"))
			return
		}
		respond(c, models.OK("Success retrieving data from bookings", bookings))
	}
}

// CreateBooking validates the booking's references, persists it and
// notifies the trip's driver.
func CreateBooking(s *store.Stores, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := c.Param("userId")

		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			respond(c, models.BadRequest(err.Error()))
			return
		}

		if userID != booking.UserID {
			respond(c, models.BadRequest("The users don't match"))
			return
		}
		userExists, err := s.Users.Exists(ctx, userID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}
		if !userExists {
			respond(c, models.BadRequest("Unknown user"))
			return
		}
		trip, err := s.Trips.GetByID(ctx, booking.TripID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			respond(c, models.ServerError("Failed to fetch trip"))
			return
		}
		if trip == nil {
			respond(c, models.BadRequest("Unknown trip"))
			return
		}
		if !booking.Status.IsValid() {
			respond(c, models.BadRequest("Incorrect status value"))
			return
		}

		booking.ID = ""
		if _, err := s.Bookings.Insert(ctx, &booking); err != nil {
			respond(c, models.ServerError("Failed to create booking"))
			return
		}

		services.Notify(hub, trip.DriverID, services.Event{
			Type: services.EventBookingCreated,
			Data: booking,
		})
		respond(c, models.OK("Success saving data", booking))
	}
}

// UpdateBooking re-validates the booking's references, overwrites it and
// notifies the booking's owner of the (possibly new) status.
func UpdateBooking(s *store.Stores, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := c.Param("userId")
		id := c.Param("id")

		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			respond(c, models.BadRequest(err.Error()))
			return
		}

		if userID != booking.UserID {
			respond(c, models.BadRequest("The users don't match"))
			return
		}
		bookingExists, err := s.Bookings.Exists(ctx, id)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch booking"))
			return
		}
		if !bookingExists {
			respond(c, models.NotFound(fmt.Sprintf("No booking with id %s found", id)))
			return
		}
		userExists, err := s.Users.Exists(ctx, userID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}
		if !userExists {
			respond(c, models.BadRequest("Unknown user"))
			return
		}
		tripExists, err := s.Trips.Exists(ctx, booking.TripID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch trip"))
			return
		}
		if !tripExists {
			respond(c, models.BadRequest("Unknown trip"))
			return
		}
		if !booking.Status.IsValid() {
			respond(c, models.BadRequest("Incorrect status value"))
			return
		}

		if err := s.Bookings.Update(ctx, id, &booking); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respond(c, models.NotFound(fmt.Sprintf("No booking with id %s found", id)))
				return
			}
			respond(c, models.ServerError("Failed to update booking"))
			return
		}

		services.Notify(hub, booking.UserID, services.Event{
			Type: services.EventBookingUpdated,
			Data: booking,
		})
		respond(c, models.OK("Success updating data", booking))
	}
}

// DeleteBooking removes one booking; bookings cascade into nothing.
func DeleteBooking(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("id")

		exists, err := s.Bookings.Exists(ctx, id)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch booking"))
			return
		}
		if !exists {
			respond(c, models.NotFound(fmt.Sprintf("No booking with id %s found", id)))
			return
		}
		if err := s.Bookings.Delete(ctx, id); err != nil {
			respond(c, models.ServerError("Failed to delete booking"))
			return
		}
		respond(c, models.OK("Success deleting data", nil))
	}
}
