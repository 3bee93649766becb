package handlers

import (
	"errors"
	"fmt"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/etsiinf/carpool-backend/internal/services"
	"github.com/etsiinf/carpool-backend/internal/store"
	"github.com/gin-gonic/gin"
)

// GetMessage retrieves one message, visible only to its sender or recipient.
func GetMessage(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		id := c.Param("id")

		message, err := s.Messages.GetByID(c.Request.Context(), id)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			respond(c, models.ServerError("Failed to fetch message"))
			return
		}
		if message == nil || (message.SenderID != userID && message.RecipientID != userID) {
			respond(c, models.NotFound(fmt.Sprintf("No message found with id %s for user %s", id, userID)))
			return
		}
		respond(c, models.OK("Success retrieving data from message", message))
	}
}

// GetUserMessages lists the messages a user received, then those it sent.
func GetUserMessages(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := c.Param("userId")

		received, err := s.Messages.ByRecipient(ctx, userID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch messages"))
			return
		}
		sent, err := s.Messages.BySender(ctx, userID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch messages"))
			return
		}

		messages := append(received, sent...)
		if len(messages) == 0 {
			respond(c, models.NotFound("No messages found"))
			return
		}
		respond(c, models.OK("Success retrieving data from messages", messages))
	}
}

// CreateMessage validates both endpoints of the message against the user
// store, persists it and pushes it to the recipient's open connections.
func CreateMessage(s *store.Stores, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := c.Param("userId")

		var message models.Message
		if err := c.ShouldBindJSON(&message); err != nil {
			respond(c, models.BadRequest(err.Error()))
			return
		}

		// The sender owns the message being created.
		if userID != message.SenderID {
			respond(c, models.BadRequest("The users don't match"))
			return
		}
		recipientExists, err := s.Users.Exists(ctx, message.RecipientID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}
		if !recipientExists {
			respond(c, models.BadRequest("Unknown recipient"))
			return
		}
		senderExists, err := s.Users.Exists(ctx, message.SenderID)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch user"))
			return
		}
		if !senderExists {
			respond(c, models.BadRequest("Unknown sender"))
			return
		}

		message.ID = ""
		if _, err := s.Messages.Insert(ctx, &message); err != nil {
			respond(c, models.ServerError("Failed to create message"))
			return
		}

		services.Notify(hub, message.RecipientID, services.Event{
			Type: services.EventMessageReceived,
			Data: message,
		})
		respond(c, models.OK("Success saving data", message))
	}
}

// DeleteMessage removes one message; messages cascade into nothing.
func DeleteMessage(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("id")

		exists, err := s.Messages.Exists(ctx, id)
		if err != nil {
			respond(c, models.ServerError("Failed to fetch message"))
			return
		}
		if !exists {
			respond(c, models.NotFound(fmt.Sprintf("No message with id %s found", id)))
			return
		}
		if err := s.Messages.Delete(ctx, id); err != nil {
			respond(c, models.ServerError("Failed to delete message"))
			return
		}
		respond(c, models.OK("Success deleting data", nil))
	}
}
