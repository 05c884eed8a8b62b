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
	"gorm.io/gorm/clause"
)

const UserCacheExpiry = 24 * time.Hour

type UserRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewUserRepository(db *gorm.DB, cache *cache.Cache) *UserRepository {
	return &UserRepository{db: db, cache: cache}
}

// GetByID returns nil without error when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	cacheKey := r.userCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var user models.User
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			return &user, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get user from cache: %v", err)
	}

	var user models.User
	err = r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	userJSON, err := json.Marshal(user)
	if err == nil {
		if err := r.cache.Set(ctx, cacheKey, userJSON, UserCacheExpiry); err != nil {
			log.Printf("Failed to set user in cache: %v", err)
		}
	}

	return &user, nil
}

// GetByEmail returns nil without error when no user has the email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// Upsert inserts the user or refreshes an existing row, mirroring the
// provisioning behavior of the identity provider sync.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = models.NewID()
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "role", "department", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return r.invalidate(ctx, user.ID)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", hashedPassword).Error
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return r.invalidate(ctx, userID)
}

func (r *UserRepository) invalidate(ctx context.Context, userID string) error {
	return r.cache.Delete(ctx, r.userCacheKey(userID))
}

func (r *UserRepository) userCacheKey(id string) string {
	return fmt.Sprintf("user_cache:%s", id)
}
