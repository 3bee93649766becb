package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

const userEventsChannel = "user:events"

// userEvent is the pub/sub envelope fanning an event out to the instance
// that holds the target user's websocket connection.
type userEvent struct {
	UserID string `json:"user_id"`
	Event  Event  `json:"event"`
}

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// Notify delivers an event to a user, best-effort. With Redis configured the
// event goes through pub/sub so whichever instance holds the user's websocket
// connection delivers it (including this one, via SubscribeUserEvents).
// Without Redis it goes straight to the local hub.
func Notify(hub *Hub, userID string, event Event) {
	if RedisClient == nil {
		if hub != nil {
			hub.SendToUser(userID, event)
		}
		return
	}

	data, err := json.Marshal(userEvent{UserID: userID, Event: event})
	if err != nil {
		log.Printf("Error marshaling user event: %v", err)
		return
	}
	if err := RedisClient.Publish(context.Background(), userEventsChannel, data).Err(); err != nil {
		log.Printf("Error publishing user event: %v", err)
	}
}

// SubscribeUserEvents forwards events published by other instances into the
// local hub. Runs until ctx is cancelled.
func SubscribeUserEvents(ctx context.Context, hub *Hub) {
	if RedisClient == nil {
		return
	}

	pubsub := RedisClient.Subscribe(ctx, userEventsChannel)
	defer pubsub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			var ev userEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("Error unmarshaling user event: %v", err)
				continue
			}
			hub.SendToUser(ev.UserID, ev.Event)
		}
	}
}
