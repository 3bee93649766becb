package handlers

import (
	"github.com/etsiinf/carpool-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// WebSocketHandler handles WebSocket connections
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		services.HandleWebSocket(hub, c.Writer, c.Request, userID)
	}
}
