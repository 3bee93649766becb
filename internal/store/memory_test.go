package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/etsiinf/carpool-backend/internal/store"
)

func TestMemoryInsertAssignsID(t *testing.T) {
	s := store.NewMemory().Stores()
	ctx := context.Background()

	user := models.User{Name: "Lucia", EmailAddress: "lucia@example.com"}
	id, err := s.Users.Insert(ctx, &user)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == "" || user.ID != id {
		t.Fatalf("insert: id %q, user.ID %q", id, user.ID)
	}

	got, err := s.Users.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Lucia" {
		t.Errorf("get: got %+v", got)
	}
}

func TestMemoryInsertKeepsGivenID(t *testing.T) {
	s := store.NewMemory().Stores()
	ctx := context.Background()

	trip := models.Trip{ID: "fixed-id", DriverID: "d1"}
	id, err := s.Trips.Insert(ctx, &trip)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("insert: got id %q, want fixed-id", id)
	}
}

func TestMemoryUpdateAbsent(t *testing.T) {
	s := store.NewMemory().Stores()
	ctx := context.Background()

	err := s.Users.Update(ctx, "no-such-id", &models.User{Name: "x"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("update absent: got %v, want ErrNotFound", err)
	}
}

func TestMemoryUpdateOverwrites(t *testing.T) {
	s := store.NewMemory().Stores()
	ctx := context.Background()

	booking := models.Booking{UserID: "u1", TripID: "t1", Status: models.BookingStatusPending}
	id, err := s.Bookings.Insert(ctx, &booking)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	updated := models.Booking{UserID: "u1", TripID: "t1", Status: models.BookingStatusAccepted}
	if err := s.Bookings.Update(ctx, id, &updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.BookingStatusAccepted {
		t.Errorf("update: got status %q, want accepted", got.Status)
	}
	if got.ID != id {
		t.Errorf("update: id changed to %q", got.ID)
	}
}

// Deleting an absent row is not an error, matching the database stores.
func TestMemoryDeleteAbsent(t *testing.T) {
	s := store.NewMemory().Stores()
	ctx := context.Background()

	if err := s.Reviews.Delete(ctx, "no-such-id"); err != nil {
		t.Errorf("delete absent: got %v, want nil", err)
	}
}

func TestMemoryExists(t *testing.T) {
	s := store.NewMemory().Stores()
	ctx := context.Background()

	message := models.Message{SenderID: "u1", RecipientID: "u2", Content: "hi"}
	id, err := s.Messages.Insert(ctx, &message)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if ok, _ := s.Messages.Exists(ctx, id); !ok {
		t.Error("exists: inserted message not found")
	}
	if ok, _ := s.Messages.Exists(ctx, "no-such-id"); ok {
		t.Error("exists: phantom message reported present")
	}
	if err := s.Messages.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok, _ := s.Messages.Exists(ctx, id); ok {
		t.Error("exists: deleted message reported present")
	}
}

func TestMemoryFilters(t *testing.T) {
	s := store.NewMemory().Stores()
	ctx := context.Background()

	for _, trip := range []models.Trip{
		{ID: "t1", DriverID: "d1"},
		{ID: "t2", DriverID: "d1"},
		{ID: "t3", DriverID: "d2"},
	} {
		tr := trip
		if _, err := s.Trips.Insert(ctx, &tr); err != nil {
			t.Fatalf("insert trip: %v", err)
		}
	}

	trips, err := s.Trips.ByDriver(ctx, "d1")
	if err != nil {
		t.Fatalf("by driver: %v", err)
	}
	if len(trips) != 2 || trips[0].ID != "t1" || trips[1].ID != "t2" {
		t.Errorf("by driver: got %+v", trips)
	}

	for _, booking := range []models.Booking{
		{ID: "b1", UserID: "u1", TripID: "t1", Status: models.BookingStatusPending},
		{ID: "b2", UserID: "u2", TripID: "t1", Status: models.BookingStatusPending},
		{ID: "b3", UserID: "u1", TripID: "t3", Status: models.BookingStatusPending},
	} {
		b := booking
		if _, err := s.Bookings.Insert(ctx, &b); err != nil {
			t.Fatalf("insert booking: %v", err)
		}
	}

	byTrip, err := s.Bookings.ByTrip(ctx, "t1")
	if err != nil {
		t.Fatalf("by trip: %v", err)
	}
	if len(byTrip) != 2 {
		t.Errorf("by trip: got %d bookings, want 2", len(byTrip))
	}
	byUser, err := s.Bookings.ByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("by user: got %d bookings, want 2", len(byUser))
	}
}

func TestMemorySearchByName(t *testing.T) {
	s := store.NewMemory().Stores()
	ctx := context.Background()

	for _, user := range []models.User{
		{ID: "u1", Name: "Alice"},
		{ID: "u2", Name: "Alicia"},
		{ID: "u3", Name: "Bob"},
	} {
		u := user
		if _, err := s.Users.Insert(ctx, &u); err != nil {
			t.Fatalf("insert user: %v", err)
		}
	}

	users, err := s.Users.SearchByName(ctx, "ALIC")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("search: got %d users, want 2", len(users))
	}
}

func TestMemoryGetByEmail(t *testing.T) {
	s := store.NewMemory().Stores()
	ctx := context.Background()

	user := models.User{Name: "Lucia", EmailAddress: "lucia@example.com"}
	if _, err := s.Users.Insert(ctx, &user); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := s.Users.GetByEmail(ctx, "lucia@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("get by email: got %+v", got)
	}
	if _, err := s.Users.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("absent email: got %v, want ErrNotFound", err)
	}
}
