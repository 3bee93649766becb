package store

import (
	"context"
	"errors"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTripStore persists trips in the trips table.
type GormTripStore struct {
	db *gorm.DB
}

func NewGormTripStore(db *gorm.DB) *GormTripStore {
	return &GormTripStore{db: db}
}

func (s *GormTripStore) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	var trip models.Trip
	if err := s.db.WithContext(ctx).First(&trip, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (s *GormTripStore) All(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	if err := s.db.WithContext(ctx).Order("id").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (s *GormTripStore) ByDriver(ctx context.Context, driverID string) ([]models.Trip, error) {
	var trips []models.Trip
	if err := s.db.WithContext(ctx).Where("driver_id = ?", driverID).Order("id").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (s *GormTripStore) Insert(ctx context.Context, trip *models.Trip) (string, error) {
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(trip).Error; err != nil {
		return "", err
	}
	return trip.ID, nil
}

func (s *GormTripStore) Update(ctx context.Context, id string, trip *models.Trip) error {
	trip.ID = id
	res := s.db.WithContext(ctx).
		Model(&models.Trip{}).
		Where("id = ?", id).
		Select("*").
		Omit("id").
		Updates(trip)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete is a no-op when the id is absent.
func (s *GormTripStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Trip{}, "id = ?", id).Error
}

func (s *GormTripStore) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Trip{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
