package models

import (
	"time"
)

// CmeEvent model
type CmeEvent struct {
	ID            string    `gorm:"primaryKey;column:id" json:"id"`
	Title         string    `gorm:"size:255;not null;column:title" json:"title"`
	Description   string    `gorm:"type:text;column:description" json:"description"`
	EventDate     time.Time `gorm:"not null;index;column:event_date" json:"eventDate"`
	Location      string    `gorm:"size:255;column:location" json:"location"`
	OrganizedByID string    `gorm:"not null;column:organized_by_id" json:"organizedById"`
	MaxAttendees  int       `gorm:"column:max_attendees" json:"maxAttendees"`
	CreatedAt     time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	Votes         []CmeVote `gorm:"foreignKey:EventID;references:ID" json:"-"`
}

func (CmeEvent) TableName() string {
	return "cme_event"
}

// CmeVote model
type CmeVote struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	EventID    string    `gorm:"not null;index;uniqueIndex:idx_event_user;column:event_id" json:"eventId"`
	UserID     string    `gorm:"not null;uniqueIndex:idx_event_user;column:user_id" json:"userId"`
	WillAttend bool      `gorm:"not null;column:will_attend" json:"willAttend"`
	CreatedAt  time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
}

func (CmeVote) TableName() string {
	return "cme_vote"
}

// JournalArticle model
type JournalArticle struct {
	ID            string     `gorm:"primaryKey;column:id" json:"id"`
	Title         string     `gorm:"size:255;not null;column:title" json:"title"`
	Authors       string     `gorm:"type:text;column:authors" json:"authors"`
	Journal       string     `gorm:"size:255;column:journal" json:"journal"`
	PublishedDate *time.Time `gorm:"column:published_date" json:"publishedDate"`
	DOI           string     `gorm:"size:255;column:doi" json:"doi"`
	Summary       string     `gorm:"type:text;column:summary" json:"summary"`
	FileURL       string     `gorm:"size:512;column:file_url" json:"fileUrl"`
	SharedByID    string     `gorm:"not null;column:shared_by_id" json:"sharedById"`
	Tags          string     `gorm:"type:text;column:tags" json:"tags"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
}

func (JournalArticle) TableName() string {
	return "journal_article"
}
