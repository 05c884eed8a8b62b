package repositories

import (
	"PulmoCare/cache"
	"PulmoCare/database"
	"PulmoCare/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransferRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewTransferRepository(db *gorm.DB, cache *cache.Cache) *TransferRepository {
	return &TransferRepository{db: db, cache: cache}
}

func (r *TransferRepository) GetAll(ctx context.Context) ([]models.PatientTransfer, error) {
	var transfers []models.PatientTransfer
	err := r.db.WithContext(ctx).Order("requested_at DESC").Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transfers: %w", err)
	}
	return transfers, nil
}

// GetByID returns nil without error when the transfer does not exist.
func (r *TransferRepository) GetByID(ctx context.Context, id string) (*models.PatientTransfer, error) {
	var transfer models.PatientTransfer
	err := r.db.WithContext(ctx).First(&transfer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return &transfer, nil
}

func (r *TransferRepository) GetByStatus(ctx context.Context, status string) ([]models.PatientTransfer, error) {
	var transfers []models.PatientTransfer
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("requested_at DESC").
		Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transfers by status: %w", err)
	}
	return transfers, nil
}

func (r *TransferRepository) GetRecent(ctx context.Context, limit int) ([]models.PatientTransfer, error) {
	var transfers []models.PatientTransfer
	err := r.db.WithContext(ctx).
		Order("requested_at DESC").
		Limit(limit).
		Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transfers: %w", err)
	}
	return transfers, nil
}

func (r *TransferRepository) Create(ctx context.Context, transfer *models.PatientTransfer) error {
	if transfer.ID == "" {
		transfer.ID = models.NewID()
	}
	if transfer.Status == "" {
		transfer.Status = models.TransferStatusPending
	}
	if transfer.RequestedAt.IsZero() {
		transfer.RequestedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}

// Update merges a partial payload into the transfer. The redis lock
// serializes concurrent status updates against the same transfer; last
// write no longer silently wins.
func (r *TransferRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.PatientTransfer, error) {
	unlock, err := r.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result := r.db.WithContext(ctx).Model(&models.PatientTransfer{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update transfer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// Complete finalizes an approved transfer in one transaction: stamps the
// completion time, moves the patient to the destination ward, and adjusts
// both wards' occupied bed counts so census and assignment cannot drift
// apart.
func (r *TransferRepository) Complete(ctx context.Context, id string) (*models.PatientTransfer, error) {
	unlock, err := r.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var transfer models.PatientTransfer
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&transfer, "id = ?", id).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&transfer).Updates(map[string]interface{}{
			"status":       models.TransferStatusCompleted,
			"completed_at": now,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Patient{}).
			Where("id = ?", transfer.PatientID).
			Updates(map[string]interface{}{"current_ward_id": transfer.ToWardID}).Error; err != nil {
			return err
		}

		if transfer.FromWardID != nil {
			if err := tx.Model(&models.Ward{}).
				Where("id = ? AND occupied_beds > 0", *transfer.FromWardID).
				Update("occupied_beds", gorm.Expr("occupied_beds - 1")).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&models.Ward{}).
			Where("id = ?", transfer.ToWardID).
			Update("occupied_beds", gorm.Expr("occupied_beds + 1")).Error; err != nil {
			return err
		}

		transfer.Status = models.TransferStatusCompleted
		transfer.CompletedAt = &now
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to complete transfer: %w", err)
	}

	if err := r.cache.Delete(ctx, wardListKey); err != nil {
		log.Printf("Failed to invalidate ward cache: %v", err)
	}
	if err := r.cache.Delete(ctx, patientListKey); err != nil {
		log.Printf("Failed to invalidate patient cache: %v", err)
	}
	return &transfer, nil
}

// lock acquires the per-transfer redis lock, retrying briefly.
func (r *TransferRepository) lock(ctx context.Context, id string) (func(), error) {
	lockKey := fmt.Sprintf("transfer_lock:%s", id)
	lockValue := uuid.New().String()

	maxRetries := 3
	retryDelay := 200 * time.Millisecond
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return nil, fmt.Errorf("failed to acquire transfer lock: %w", err)
	}

	return func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release transfer lock: %v", err)
		}
	}, nil
}
