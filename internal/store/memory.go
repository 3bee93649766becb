package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/google/uuid"
)

// Memory is a map-backed store implementing every entity interface. It backs
// the handler tests and keeps the same contract as the gorm stores:
// ErrNotFound on absent reads/updates, no-op deletes, no referential checks.
type Memory struct {
	mu       sync.RWMutex
	users    map[string]models.User
	trips    map[string]models.Trip
	bookings map[string]models.Booking
	messages map[string]models.Message
	reviews  map[string]models.Review
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]models.User),
		trips:    make(map[string]models.Trip),
		bookings: make(map[string]models.Booking),
		messages: make(map[string]models.Message),
		reviews:  make(map[string]models.Review),
	}
}

// Stores exposes the memory store through the injection bundle.
func (m *Memory) Stores() *Stores {
	return &Stores{
		Users:    memUserStore{m},
		Trips:    memTripStore{m},
		Bookings: memBookingStore{m},
		Messages: memMessageStore{m},
		Reviews:  memReviewStore{m},
	}
}

// sortByID keeps list results deterministic; map iteration order is not.
func sortUsers(users []models.User) []models.User {
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func sortTrips(trips []models.Trip) []models.Trip {
	sort.Slice(trips, func(i, j int) bool { return trips[i].ID < trips[j].ID })
	return trips
}

func sortBookings(bookings []models.Booking) []models.Booking {
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings
}

func sortMessages(messages []models.Message) []models.Message {
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages
}

func sortReviews(reviews []models.Review) []models.Review {
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews
}

type memUserStore struct{ m *Memory }

func (s memUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	user, ok := s.m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for _, user := range s.m.users {
		if user.EmailAddress == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s memUserStore) All(_ context.Context) ([]models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	users := make([]models.User, 0, len(s.m.users))
	for _, user := range s.m.users {
		users = append(users, user)
	}
	return sortUsers(users), nil
}

func (s memUserStore) SearchByName(_ context.Context, substring string) ([]models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	var users []models.User
	needle := strings.ToLower(substring)
	for _, user := range s.m.users {
		if strings.Contains(strings.ToLower(user.Name), needle) {
			users = append(users, user)
		}
	}
	return sortUsers(users), nil
}

func (s memUserStore) Insert(_ context.Context, user *models.User) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	s.m.users[user.ID] = *user
	return user.ID, nil
}

func (s memUserStore) Update(_ context.Context, id string, user *models.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.users[id]; !ok {
		return ErrNotFound
	}
	user.ID = id
	s.m.users[id] = *user
	return nil
}

func (s memUserStore) Delete(_ context.Context, id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.users, id)
	return nil
}

func (s memUserStore) Exists(_ context.Context, id string) (bool, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	_, ok := s.m.users[id]
	return ok, nil
}

type memTripStore struct{ m *Memory }

func (s memTripStore) GetByID(_ context.Context, id string) (*models.Trip, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	trip, ok := s.m.trips[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &trip, nil
}

func (s memTripStore) All(_ context.Context) ([]models.Trip, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	trips := make([]models.Trip, 0, len(s.m.trips))
	for _, trip := range s.m.trips {
		trips = append(trips, trip)
	}
	return sortTrips(trips), nil
}

func (s memTripStore) ByDriver(_ context.Context, driverID string) ([]models.Trip, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	var trips []models.Trip
	for _, trip := range s.m.trips {
		if trip.DriverID == driverID {
			trips = append(trips, trip)
		}
	}
	return sortTrips(trips), nil
}

func (s memTripStore) Insert(_ context.Context, trip *models.Trip) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	s.m.trips[trip.ID] = *trip
	return trip.ID, nil
}

func (s memTripStore) Update(_ context.Context, id string, trip *models.Trip) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.trips[id]; !ok {
		return ErrNotFound
	}
	trip.ID = id
	s.m.trips[id] = *trip
	return nil
}

func (s memTripStore) Delete(_ context.Context, id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.trips, id)
	return nil
}

func (s memTripStore) Exists(_ context.Context, id string) (bool, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	_, ok := s.m.trips[id]
	return ok, nil
}

type memBookingStore struct{ m *Memory }

func (s memBookingStore) GetByID(_ context.Context, id string) (*models.Booking, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	booking, ok := s.m.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &booking, nil
}

func (s memBookingStore) ByUser(_ context.Context, userID string) ([]models.Booking, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	var bookings []models.Booking
	for _, booking := range s.m.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, booking)
		}
	}
	return sortBookings(bookings), nil
}

func (s memBookingStore) ByTrip(_ context.Context, tripID string) ([]models.Booking, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	var bookings []models.Booking
	for _, booking := range s.m.bookings {
		if booking.TripID == tripID {
			bookings = append(bookings, booking)
		}
	}
	return sortBookings(bookings), nil
}

func (s memBookingStore) Insert(_ context.Context, booking *models.Booking) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	s.m.bookings[booking.ID] = *booking
	return booking.ID, nil
}

func (s memBookingStore) Update(_ context.Context, id string, booking *models.Booking) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.bookings[id]; !ok {
		return ErrNotFound
	}
	booking.ID = id
	s.m.bookings[id] = *booking
	return nil
}

func (s memBookingStore) Delete(_ context.Context, id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.bookings, id)
	return nil
}

func (s memBookingStore) Exists(_ context.Context, id string) (bool, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	_, ok := s.m.bookings[id]
	return ok, nil
}

type memMessageStore struct{ m *Memory }

func (s memMessageStore) GetByID(_ context.Context, id string) (*models.Message, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	message, ok := s.m.messages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &message, nil
}

func (s memMessageStore) BySender(_ context.Context, senderID string) ([]models.Message, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	var messages []models.Message
	for _, message := range s.m.messages {
		if message.SenderID == senderID {
			messages = append(messages, message)
		}
	}
	return sortMessages(messages), nil
}

func (s memMessageStore) ByRecipient(_ context.Context, recipientID string) ([]models.Message, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	var messages []models.Message
	for _, message := range s.m.messages {
		if message.RecipientID == recipientID {
			messages = append(messages, message)
		}
	}
	return sortMessages(messages), nil
}

func (s memMessageStore) Insert(_ context.Context, message *models.Message) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	s.m.messages[message.ID] = *message
	return message.ID, nil
}

func (s memMessageStore) Delete(_ context.Context, id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.messages, id)
	return nil
}

func (s memMessageStore) Exists(_ context.Context, id string) (bool, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	_, ok := s.m.messages[id]
	return ok, nil
}

type memReviewStore struct{ m *Memory }

func (s memReviewStore) GetByID(_ context.Context, id string) (*models.Review, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	review, ok := s.m.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &review, nil
}

func (s memReviewStore) ByDriver(_ context.Context, driverID string) ([]models.Review, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	var reviews []models.Review
	for _, review := range s.m.reviews {
		if review.DriverID == driverID {
			reviews = append(reviews, review)
		}
	}
	return sortReviews(reviews), nil
}

func (s memReviewStore) Insert(_ context.Context, review *models.Review) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	s.m.reviews[review.ID] = *review
	return review.ID, nil
}

func (s memReviewStore) Update(_ context.Context, id string, review *models.Review) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.reviews[id]; !ok {
		return ErrNotFound
	}
	review.ID = id
	s.m.reviews[id] = *review
	return nil
}

func (s memReviewStore) Delete(_ context.Context, id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.reviews, id)
	return nil
}

func (s memReviewStore) Exists(_ context.Context, id string) (bool, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	_, ok := s.m.reviews[id]
	return ok, nil
}
