package models

import (
	"time"
)

// Notification types.
const (
	NotificationTypeEmergency = "emergency"
	NotificationTypeInfo      = "info"
	NotificationTypeWarning   = "warning"
	NotificationTypeSuccess   = "success"
)

// Notification model. RelatedID/RelatedType optionally point at the entity
// the notification is about.
type Notification struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	UserID      string    `gorm:"not null;index;column:user_id" json:"userId"`
	Title       string    `gorm:"size:255;not null;column:title" json:"title"`
	Message     string    `gorm:"type:text;not null;column:message" json:"message"`
	Type        string    `gorm:"size:20;check:type IN ('emergency', 'info', 'warning', 'success');not null;column:type" json:"type"`
	IsRead      bool      `gorm:"default:false;column:is_read" json:"isRead"`
	RelatedID   string    `gorm:"column:related_id" json:"relatedId"`
	RelatedType string    `gorm:"size:50;column:related_type" json:"relatedType"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index;column:created_at" json:"createdAt"`
}

func (Notification) TableName() string {
	return "notification"
}

// Message model. RecipientID is nil for group messages; ParentMessageID
// threads replies.
type Message struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	SenderID        string    `gorm:"not null;index;column:sender_id" json:"senderId"`
	RecipientID     *string   `gorm:"index;column:recipient_id" json:"recipientId"`
	IsGroupMessage  bool      `gorm:"default:false;column:is_group_message" json:"isGroupMessage"`
	Subject         string    `gorm:"size:255;column:subject" json:"subject"`
	Content         string    `gorm:"type:text;not null;column:content" json:"content"`
	IsRead          bool      `gorm:"default:false;column:is_read" json:"isRead"`
	ParentMessageID *string   `gorm:"column:parent_message_id" json:"parentMessageId"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index;column:created_at" json:"createdAt"`
}

func (Message) TableName() string {
	return "message"
}
