package store

import (
	"context"
	"errors"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBookingStore persists bookings in the bookings table.
type GormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

func (s *GormBookingStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *GormBookingStore) ByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormBookingStore) ByTrip(ctx context.Context, tripID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Where("trip_id = ?", tripID).Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormBookingStore) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		return "", err
	}
	return booking.ID, nil
}

func (s *GormBookingStore) Update(ctx context.Context, id string, booking *models.Booking) error {
	booking.ID = id
	res := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Select("*").
		Omit("id").
		Updates(booking)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete is a no-op when the id is absent.
func (s *GormBookingStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id).Error
}

func (s *GormBookingStore) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
