package services

import (
	"PulmoCare/models"
	"PulmoCare/repositories"
	"PulmoCare/utils"
	"context"
)

type JournalService struct {
	repository *repositories.JournalRepository
}

func NewJournalService(repository *repositories.JournalRepository) *JournalService {
	return &JournalService{repository: repository}
}

func (s *JournalService) GetAll(ctx context.Context) ([]models.JournalArticle, error) {
	return s.repository.GetAll(ctx)
}

func (s *JournalService) GetByID(ctx context.Context, id string) (*models.JournalArticle, error) {
	article, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

func (s *JournalService) Create(ctx context.Context, article *models.JournalArticle) error {
	if err := utils.ValidateJournalArticleInput(*article); err != nil {
		return err
	}
	return s.repository.Create(ctx, article)
}
