package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/etsiinf/carpool-backend/internal/handlers"
	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/etsiinf/carpool-backend/internal/store"
	"github.com/gin-gonic/gin"
)

// newTestEnv builds a router over fresh in-memory stores. The nil hub makes
// event delivery a no-op.
func newTestEnv(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	stores := store.NewMemory().Stores()
	return handlers.NewRouter(stores, nil), stores
}

// doJSON performs a request and decodes the envelope.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) models.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp models.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	if resp.Code != 0 && resp.Code != w.Code {
		t.Fatalf("envelope code %d does not match HTTP status %d", resp.Code, w.Code)
	}
	return resp
}

// decodeResult re-marshals the envelope's result into a typed value.
func decodeResult(t *testing.T, resp models.Response, v interface{}) {
	t.Helper()
	data, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("unmarshal result into %T: %v", v, err)
	}
}

func seedUser(t *testing.T, s *store.Stores, name string) models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		LastName:     "Tester",
		Bio:          "seeded",
		PasswordHash: "x",
		EmailAddress: name + "@example.com",
		Municipality: "Madrid",
		ZipCode:      "28660",
	}
	if _, err := s.Users.Insert(context.Background(), &user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedTrip(t *testing.T, s *store.Stores, driverID string) models.Trip {
	t.Helper()
	trip := models.Trip{
		DriverID:        driverID,
		StartLocation:   "Campus Sur",
		DepartureTime:   "08:30",
		AvailablePlaces: 3,
		Price:           2,
		TripType:        "recurring",
		Day:             "monday",
		EndDate:         "2025-06-30",
		ArrivalLocation: "Moncloa",
	}
	if _, err := s.Trips.Insert(context.Background(), &trip); err != nil {
		t.Fatalf("seed trip: %v", err)
	}
	return trip
}

func seedBooking(t *testing.T, s *store.Stores, userID, tripID string) models.Booking {
	t.Helper()
	booking := models.Booking{
		UserID: userID,
		TripID: tripID,
		Status: models.BookingStatusPending,
	}
	if _, err := s.Bookings.Insert(context.Background(), &booking); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return booking
}

func seedReview(t *testing.T, s *store.Stores, reviewerID, driverID string) models.Review {
	t.Helper()
	review := models.Review{
		ReviewerID: reviewerID,
		DriverID:   driverID,
		Rating:     4,
		Comment:    "smooth ride",
		Date:       "2025-05-12",
	}
	if _, err := s.Reviews.Insert(context.Background(), &review); err != nil {
		t.Fatalf("seed review: %v", err)
	}
	return review
}

func seedMessage(t *testing.T, s *store.Stores, senderID, recipientID string) models.Message {
	t.Helper()
	message := models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     "see you at the meeting point",
		Date:        "2025-05-12T08:00:00Z",
	}
	if _, err := s.Messages.Insert(context.Background(), &message); err != nil {
		t.Fatalf("seed message: %v", err)
	}
	return message
}
