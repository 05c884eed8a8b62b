package services

import (
	"PulmoCare/models"
	"PulmoCare/realtime"
	"PulmoCare/repositories"
	"PulmoCare/utils"
	"context"
)

type MessageService struct {
	messages *repositories.MessageRepository
	hub      broadcaster
}

func NewMessageService(messages *repositories.MessageRepository, hub broadcaster) *MessageService {
	return &MessageService{messages: messages, hub: hub}
}

func (s *MessageService) GetByUser(ctx context.Context, userID string) ([]models.Message, error) {
	return s.messages.GetByUser(ctx, userID)
}

func (s *MessageService) GetConversation(ctx context.Context, userID, otherUserID string) ([]models.Message, error) {
	return s.messages.GetConversation(ctx, userID, otherUserID)
}

// Send stores the message and pushes it live: direct messages go to the
// recipient's connections, group messages to everyone.
func (s *MessageService) Send(ctx context.Context, message *models.Message) error {
	if err := utils.ValidateMessageInput(*message); err != nil {
		return err
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return err
	}

	event := realtime.Event{Type: "message", Data: message}
	if message.IsGroupMessage {
		s.hub.BroadcastToAll(event)
	} else if message.RecipientID != nil {
		s.hub.BroadcastToUser(*message.RecipientID, event)
	}
	return nil
}

func (s *MessageService) MarkRead(ctx context.Context, id string) (*models.Message, error) {
	message, err := s.messages.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrNotFound
	}
	return message, nil
}
