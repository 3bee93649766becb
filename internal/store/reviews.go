package store

import (
	"context"
	"errors"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReviewStore persists reviews in the reviews table.
type GormReviewStore struct {
	db *gorm.DB
}

func NewGormReviewStore(db *gorm.DB) *GormReviewStore {
	return &GormReviewStore{db: db}
}

func (s *GormReviewStore) GetByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (s *GormReviewStore) ByDriver(ctx context.Context, driverID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).Where("driver_id = ?", driverID).Order("id").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormReviewStore) Insert(ctx context.Context, review *models.Review) (string, error) {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return "", err
	}
	return review.ID, nil
}

func (s *GormReviewStore) Update(ctx context.Context, id string, review *models.Review) error {
	review.ID = id
	res := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Select("*").
		Omit("id").
		Updates(review)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete is a no-op when the id is absent.
func (s *GormReviewStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id).Error
}

func (s *GormReviewStore) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
