package services

import (
	"PulmoCare/models"
	"PulmoCare/realtime"
	"PulmoCare/repositories"
	"PulmoCare/utils"
	"context"
	"log"
)

type NotificationService struct {
	notifications *repositories.NotificationRepository
	users         *repositories.UserRepository
	hub           broadcaster
}

func NewNotificationService(notifications *repositories.NotificationRepository, users *repositories.UserRepository, hub broadcaster) *NotificationService {
	return &NotificationService{notifications: notifications, users: users, hub: hub}
}

// GetByUser lists a user's notifications, optionally only the unread ones.
func (s *NotificationService) GetByUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	if unreadOnly {
		return s.notifications.GetUnreadByUser(ctx, userID)
	}
	return s.notifications.GetByUser(ctx, userID)
}

// Create stores the notification and pushes it to the recipient's open
// connections. Emergencies are additionally mailed so they reach staff who
// are offline.
func (s *NotificationService) Create(ctx context.Context, notification *models.Notification) error {
	if err := utils.ValidateNotificationInput(*notification); err != nil {
		return err
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return err
	}

	s.hub.BroadcastToUser(notification.UserID, realtime.Event{Type: "notification", Data: notification})

	if notification.Type == models.NotificationTypeEmergency && utils.EmailConfigured() {
		user, err := s.users.GetByID(ctx, notification.UserID)
		if err != nil || user == nil {
			log.Printf("Failed to resolve emergency recipient %s: %v", notification.UserID, err)
			return nil
		}
		go func(email, title, message string) {
			if err := utils.SendEmergencyEmail(email, title, message); err != nil {
				log.Printf("Failed to send emergency email: %v", err)
			}
		}(user.Email, notification.Title, notification.Message)
	}
	return nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	notification, err := s.notifications.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotFound
	}
	return notification, nil
}

// MarkAllRead flags every unread notification for the user and reports how
// many were flagged. Safe to repeat.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.notifications.MarkAllRead(ctx, userID)
}
