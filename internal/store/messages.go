package store

import (
	"context"
	"errors"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMessageStore persists messages in the messages table.
type GormMessageStore struct {
	db *gorm.DB
}

func NewGormMessageStore(db *gorm.DB) *GormMessageStore {
	return &GormMessageStore{db: db}
}

func (s *GormMessageStore) GetByID(ctx context.Context, id string) (*models.Message, error) {
	var message models.Message
	if err := s.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (s *GormMessageStore) BySender(ctx context.Context, senderID string) ([]models.Message, error) {
	var messages []models.Message
	if err := s.db.WithContext(ctx).Where("sender_id = ?", senderID).Order("id").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *GormMessageStore) ByRecipient(ctx context.Context, recipientID string) ([]models.Message, error) {
	var messages []models.Message
	if err := s.db.WithContext(ctx).Where("recipient_id = ?", recipientID).Order("id").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *GormMessageStore) Insert(ctx context.Context, message *models.Message) (string, error) {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(message).Error; err != nil {
		return "", err
	}
	return message.ID, nil
}

// Delete is a no-op when the id is absent.
func (s *GormMessageStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Message{}, "id = ?", id).Error
}

func (s *GormMessageStore) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Message{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
