// Package store is the data-access layer: one small interface per entity
// kind, backed by either gorm/postgres or an in-memory map store. The store
// enforces no referential integrity; the handlers do check-then-act.
package store

import (
	"context"
	"errors"

	"github.com/etsiinf/carpool-backend/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound reports that the requested record is absent. It is distinct
// from storage failures, which are returned as-is.
var ErrNotFound = errors.New("record not found")

type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
	SearchByName(ctx context.Context, substring string) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) (string, error)
	Update(ctx context.Context, id string, user *models.User) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type TripStore interface {
	GetByID(ctx context.Context, id string) (*models.Trip, error)
	All(ctx context.Context) ([]models.Trip, error)
	ByDriver(ctx context.Context, driverID string) ([]models.Trip, error)
	Insert(ctx context.Context, trip *models.Trip) (string, error)
	Update(ctx context.Context, id string, trip *models.Trip) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type BookingStore interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ByTrip(ctx context.Context, tripID string) ([]models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) (string, error)
	Update(ctx context.Context, id string, booking *models.Booking) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type MessageStore interface {
	GetByID(ctx context.Context, id string) (*models.Message, error)
	BySender(ctx context.Context, senderID string) ([]models.Message, error)
	ByRecipient(ctx context.Context, recipientID string) ([]models.Message, error)
	Insert(ctx context.Context, message *models.Message) (string, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type ReviewStore interface {
	GetByID(ctx context.Context, id string) (*models.Review, error)
	ByDriver(ctx context.Context, driverID string) ([]models.Review, error)
	Insert(ctx context.Context, review *models.Review) (string, error)
	Update(ctx context.Context, id string, review *models.Review) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// Stores bundles the per-entity stores for injection into the handlers.
type Stores struct {
	Users    UserStore
	Trips    TripStore
	Bookings BookingStore
	Messages MessageStore
	Reviews  ReviewStore
}

// NewStores wires the gorm-backed implementations over a shared connection.
func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		Users:    NewGormUserStore(db),
		Trips:    NewGormTripStore(db),
		Bookings: NewGormBookingStore(db),
		Messages: NewGormMessageStore(db),
		Reviews:  NewGormReviewStore(db),
	}
}
