package services

import (
	"PulmoCare/models"
	"PulmoCare/repositories"
	"PulmoCare/utils"
	"context"
	"fmt"
)

type CmeService struct {
	repository *repositories.CmeRepository
}

func NewCmeService(repository *repositories.CmeRepository) *CmeService {
	return &CmeService{repository: repository}
}

func (s *CmeService) GetEvents(ctx context.Context) ([]models.CmeEvent, error) {
	return s.repository.GetEvents(ctx)
}

func (s *CmeService) GetEvent(ctx context.Context, id string) (*models.CmeEvent, error) {
	event, err := s.repository.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

func (s *CmeService) CreateEvent(ctx context.Context, event *models.CmeEvent) error {
	if err := utils.ValidateCmeEventInput(*event); err != nil {
		return err
	}
	return s.repository.CreateEvent(ctx, event)
}

func (s *CmeService) GetVotes(ctx context.Context, eventID string) ([]models.CmeVote, error) {
	event, err := s.repository.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return s.repository.GetVotes(ctx, eventID)
}

// Vote records whether the user will attend; a second vote replaces the
// first.
func (s *CmeService) Vote(ctx context.Context, eventID, userID string, willAttend bool) error {
	event, err := s.repository.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return fmt.Errorf("event %s: %w", eventID, ErrNotFound)
	}
	return s.repository.UpsertVote(ctx, &models.CmeVote{
		EventID:    eventID,
		UserID:     userID,
		WillAttend: willAttend,
	})
}
