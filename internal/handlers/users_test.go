package handlers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/etsiinf/carpool-backend/internal/store"
)

func TestCreateUserRoundTrip(t *testing.T) {
	r, _ := newTestEnv(t)

	input := models.User{
		Name:         "Lucia",
		LastName:     "Gomez",
		Bio:          "commutes from the south campus",
		Password:     "hunter22",
		EmailAddress: "lucia@example.com",
		Municipality: "Boadilla",
		ZipCode:      "28660",
	}
	resp := doJSON(t, r, "POST", "/api/users", input)
	if resp.Code != 200 {
		t.Fatalf("create user: got code %d (%s)", resp.Code, resp.Message)
	}

	var created models.User
	decodeResult(t, resp, &created)
	if created.ID == "" {
		t.Fatal("create user: no id assigned")
	}
	if created.Password != "" {
		t.Error("create user: password echoed back")
	}

	got := doJSON(t, r, "GET", "/api/users/"+created.ID, nil)
	if got.Code != 200 {
		t.Fatalf("fetch created user: got code %d", got.Code)
	}
	var fetched models.User
	decodeResult(t, got, &fetched)

	if fetched.Name != input.Name || fetched.LastName != input.LastName ||
		fetched.Bio != input.Bio || fetched.EmailAddress != input.EmailAddress ||
		fetched.Municipality != input.Municipality || fetched.ZipCode != input.ZipCode {
		t.Errorf("round-trip mismatch: got %+v, want fields of %+v", fetched, input)
	}
}

func TestGetUserNotFound(t *testing.T) {
	r, _ := newTestEnv(t)

	resp := doJSON(t, r, "GET", "/api/users/no-such-id", nil)
	if resp.Code != 404 {
		t.Fatalf("got code %d, want 404", resp.Code)
	}
	if resp.Status != "Not found" {
		t.Errorf("got status %q, want %q", resp.Status, "Not found")
	}
}

func TestListUsersEmpty(t *testing.T) {
	r, _ := newTestEnv(t)

	resp := doJSON(t, r, "GET", "/api/users", nil)
	if resp.Code != 404 {
		t.Fatalf("got code %d, want 404", resp.Code)
	}
}

func TestSearchUsersByName(t *testing.T) {
	r, s := newTestEnv(t)
	alice := seedUser(t, s, "Alice")
	seedUser(t, s, "Bob")

	resp := doJSON(t, r, "GET", "/api/users?name=li", nil)
	if resp.Code != 200 {
		t.Fatalf("got code %d, want 200", resp.Code)
	}
	var users []models.User
	decodeResult(t, resp, &users)
	if len(users) != 1 || users[0].ID != alice.ID {
		t.Errorf("got %d users, want only %s", len(users), alice.Name)
	}
}

func TestUpdateUserAbsent(t *testing.T) {
	r, _ := newTestEnv(t)

	resp := doJSON(t, r, "PUT", "/api/users/no-such-id", models.User{Name: "x", EmailAddress: "x@example.com"})
	if resp.Code != 404 {
		t.Fatalf("got code %d, want 404", resp.Code)
	}
}

func TestDeleteUserAbsent(t *testing.T) {
	r, _ := newTestEnv(t)

	resp := doJSON(t, r, "DELETE", "/api/users/no-such-id", nil)
	if resp.Code != 404 {
		t.Fatalf("got code %d, want 404", resp.Code)
	}
}

// Deleting a user removes its bookings, the reviews it received as a driver,
// and its trips along with their bookings. Unrelated entities survive.
func TestDeleteUserCascade(t *testing.T) {
	r, s := newTestEnv(t)
	ctx := context.Background()

	u1 := seedUser(t, s, "Driver")
	u2 := seedUser(t, s, "Passenger")
	t1 := seedTrip(t, s, u1.ID)
	t2 := seedTrip(t, s, u2.ID)
	b1 := seedBooking(t, s, u1.ID, t2.ID) // u1 riding on u2's trip
	b2 := seedBooking(t, s, u2.ID, t1.ID) // u2 riding on u1's trip
	r1 := seedReview(t, s, u2.ID, u1.ID)
	r2 := seedReview(t, s, u1.ID, u2.ID)

	resp := doJSON(t, r, "DELETE", "/api/users/"+u1.ID, nil)
	if resp.Code != 200 {
		t.Fatalf("delete user: got code %d (%s)", resp.Code, resp.Message)
	}

	for name, check := range map[string]func() (bool, error){
		"user":            func() (bool, error) { return s.Users.Exists(ctx, u1.ID) },
		"own booking":     func() (bool, error) { return s.Bookings.Exists(ctx, b1.ID) },
		"trip booking":    func() (bool, error) { return s.Bookings.Exists(ctx, b2.ID) },
		"received review": func() (bool, error) { return s.Reviews.Exists(ctx, r1.ID) },
		"trip":            func() (bool, error) { return s.Trips.Exists(ctx, t1.ID) },
	} {
		exists, err := check()
		if err != nil {
			t.Fatalf("%s existence check: %v", name, err)
		}
		if exists {
			t.Errorf("%s still present after cascade", name)
		}
	}

	for name, check := range map[string]func() (bool, error){
		"other user":   func() (bool, error) { return s.Users.Exists(ctx, u2.ID) },
		"other trip":   func() (bool, error) { return s.Trips.Exists(ctx, t2.ID) },
		"other review": func() (bool, error) { return s.Reviews.Exists(ctx, r2.ID) },
	} {
		exists, err := check()
		if err != nil {
			t.Fatalf("%s existence check: %v", name, err)
		}
		if !exists {
			t.Errorf("%s removed by an unrelated cascade", name)
		}
	}

	if _, err := s.Users.GetByID(ctx, u1.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("deleted user fetch: got %v, want ErrNotFound", err)
	}
}
