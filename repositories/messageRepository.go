package repositories

import (
	"PulmoCare/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// GetByUser lists messages the user sent or received, newest first.
func (r *MessageRepository) GetByUser(ctx context.Context, userID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}

// GetConversation lists the two users' exchange oldest first.
func (r *MessageRepository) GetConversation(ctx context.Context, userID1, userID2 string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID1, userID2, userID2, userID1).
		Order("created_at").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return messages, nil
}

func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	if message.ID == "" {
		message.ID = models.NewID()
	}
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// MarkRead flags one message read and returns it, nil when missing.
func (r *MessageRepository) MarkRead(ctx context.Context, id string) (*models.Message, error) {
	result := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to mark message as read: %w", result.Error)
	}
	var message models.Message
	err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to reload message: %w", err)
	}
	return &message, nil
}
