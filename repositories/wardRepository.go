package repositories

import (
	"PulmoCare/cache"
	"PulmoCare/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	WardCacheExpiry = 1 * time.Hour
	wardListKey     = "wards_cache"
)

type WardRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewWardRepository(db *gorm.DB, cache *cache.Cache) *WardRepository {
	return &WardRepository{db: db, cache: cache}
}

func (r *WardRepository) GetAll(ctx context.Context) ([]models.Ward, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cached, err := r.cache.Get(ctx, wardListKey)
	if err == nil {
		var wards []models.Ward
		if err := json.Unmarshal([]byte(cached), &wards); err == nil {
			return wards, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get wards from cache: %v", err)
	}

	var wards []models.Ward
	if err := r.db.WithContext(ctx).Order("name").Find(&wards).Error; err != nil {
		return nil, fmt.Errorf("failed to get wards: %w", err)
	}

	wardsJSON, err := json.Marshal(wards)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wards: %w", err)
	}
	if err := r.cache.Set(ctx, wardListKey, wardsJSON, WardCacheExpiry); err != nil {
		log.Printf("Failed to set wards in cache: %v", err)
	}

	return wards, nil
}

// GetByID returns nil without error when the ward does not exist.
func (r *WardRepository) GetByID(ctx context.Context, id string) (*models.Ward, error) {
	var ward models.Ward
	err := r.db.WithContext(ctx).First(&ward, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ward: %w", err)
	}
	return &ward, nil
}

func (r *WardRepository) Create(ctx context.Context, ward *models.Ward) error {
	if ward.ID == "" {
		ward.ID = models.NewID()
	}
	if err := r.db.WithContext(ctx).Create(ward).Error; err != nil {
		return fmt.Errorf("failed to create ward: %w", err)
	}
	return r.cache.Delete(ctx, wardListKey)
}

// UpdateOccupancy sets the occupied bed count directly. Transfer completion
// adjusts counts transactionally instead; this exists for manual census
// corrections.
func (r *WardRepository) UpdateOccupancy(ctx context.Context, wardID string, occupiedBeds int) (*models.Ward, error) {
	err := r.db.WithContext(ctx).Model(&models.Ward{}).
		Where("id = ?", wardID).
		Update("occupied_beds", occupiedBeds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update ward occupancy: %w", err)
	}
	if err := r.cache.Delete(ctx, wardListKey); err != nil {
		log.Printf("Failed to invalidate ward cache: %v", err)
	}
	return r.GetByID(ctx, wardID)
}
