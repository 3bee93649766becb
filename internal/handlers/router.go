// Package handlers contains one gin handler per API operation. All
// referential validation and cascade-delete orchestration lives here; the
// store layer below performs no cross-entity checks of its own.
package handlers

import (
	"github.com/etsiinf/carpool-backend/internal/middleware"
	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/etsiinf/carpool-backend/internal/services"
	"github.com/etsiinf/carpool-backend/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// respond writes the envelope, mirroring its code as the HTTP status.
func respond(c *gin.Context, resp models.Response) {
	c.JSON(resp.Code, resp)
}

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(s *store.Stores, hub *services.Hub) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", Login(s))
		}

		// WebSocket connection
		api.GET("/ws", middleware.AuthMiddleware(), WebSocketHandler(hub))

		users := api.Group("/users")
		{
			users.GET("", GetUsers(s))
			users.POST("", CreateUser(s))
			users.GET("/:userId", GetUser(s))
			users.PUT("/:userId", UpdateUser(s))
			users.DELETE("/:userId", DeleteUser(s))
			users.POST("/:userId/avatar", UploadAvatar(s))

			users.GET("/:userId/bookings", GetUserBookings(s))
			users.POST("/:userId/bookings", CreateBooking(s, hub))
			users.GET("/:userId/bookings/:id", GetBooking(s))
			users.PUT("/:userId/bookings/:id", UpdateBooking(s, hub))
			users.DELETE("/:userId/bookings/:id", DeleteBooking(s))

			users.GET("/:userId/messages", GetUserMessages(s))
			users.POST("/:userId/messages", CreateMessage(s, hub))
			users.GET("/:userId/messages/:id", GetMessage(s))
			users.DELETE("/:userId/messages/:id", DeleteMessage(s))

			users.GET("/:userId/reviews", GetUserReviews(s))
			users.POST("/:userId/reviews", CreateReview(s))
			users.GET("/:userId/reviews/:id", GetReview(s))
			users.PUT("/:userId/reviews/:id", UpdateReview(s))
			users.DELETE("/:userId/reviews/:id", DeleteReview(s))
		}

		trips := api.Group("/trips")
		{
			trips.GET("", GetTrips(s))
			trips.POST("", CreateTrip(s))
			trips.GET("/:tripId", GetTrip(s))
			trips.PUT("/:tripId", UpdateTrip(s))
			trips.DELETE("/:tripId", DeleteTrip(s))
		}
	}

	return r
}
