package store

import (
	"context"
	"errors"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserStore persists users in the users table.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email_address = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) All(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormUserStore) SearchByName(ctx context.Context, substring string) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+substring+"%").
		Order("id").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormUserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return "", err
	}
	return user.ID, nil
}

func (s *GormUserStore) Update(ctx context.Context, id string, user *models.User) error {
	user.ID = id
	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Select("*").
		Omit("id").
		Updates(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete is a no-op when the id is absent.
func (s *GormUserStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}

func (s *GormUserStore) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
