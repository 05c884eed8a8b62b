package repositories

import (
	"PulmoCare/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type JournalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) GetAll(ctx context.Context) ([]models.JournalArticle, error) {
	var articles []models.JournalArticle
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get journal articles: %w", err)
	}
	return articles, nil
}

// GetByID returns nil without error when the article does not exist.
func (r *JournalRepository) GetByID(ctx context.Context, id string) (*models.JournalArticle, error) {
	var article models.JournalArticle
	err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get journal article: %w", err)
	}
	return &article, nil
}

func (r *JournalRepository) Create(ctx context.Context, article *models.JournalArticle) error {
	if article.ID == "" {
		article.ID = models.NewID()
	}
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("failed to create journal article: %w", err)
	}
	return nil
}
