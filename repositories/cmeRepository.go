package repositories

import (
	"PulmoCare/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CmeRepository struct {
	db *gorm.DB
}

func NewCmeRepository(db *gorm.DB) *CmeRepository {
	return &CmeRepository{db: db}
}

func (r *CmeRepository) GetEvents(ctx context.Context) ([]models.CmeEvent, error) {
	var events []models.CmeEvent
	err := r.db.WithContext(ctx).Order("event_date DESC").Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get CME events: %w", err)
	}
	return events, nil
}

// GetEvent returns nil without error when the event does not exist.
func (r *CmeRepository) GetEvent(ctx context.Context, id string) (*models.CmeEvent, error) {
	var event models.CmeEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get CME event: %w", err)
	}
	return &event, nil
}

func (r *CmeRepository) CreateEvent(ctx context.Context, event *models.CmeEvent) error {
	if event.ID == "" {
		event.ID = models.NewID()
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create CME event: %w", err)
	}
	return nil
}

func (r *CmeRepository) GetVotes(ctx context.Context, eventID string) ([]models.CmeVote, error) {
	var votes []models.CmeVote
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get CME votes: %w", err)
	}
	return votes, nil
}

// UpsertVote records a user's attendance vote, replacing any earlier vote
// for the same event.
func (r *CmeRepository) UpsertVote(ctx context.Context, vote *models.CmeVote) error {
	if vote.ID == "" {
		vote.ID = models.NewID()
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"will_attend"}),
	}).Create(vote).Error
	if err != nil {
		return fmt.Errorf("failed to record CME vote: %w", err)
	}
	return nil
}
