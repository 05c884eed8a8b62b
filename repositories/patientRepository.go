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
	PatientCacheExpiry = 1 * time.Hour
	patientListKey     = "patients_cache"
)

type PatientRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache) *PatientRepository {
	return &PatientRepository{db: db, cache: cache}
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cached, err := r.cache.Get(ctx, patientListKey)
	if err == nil {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cached), &patients); err == nil {
			return patients, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	if err := r.db.WithContext(ctx).Order("admission_date DESC").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to get patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patients: %w", err)
	}
	if err := r.cache.Set(ctx, patientListKey, patientsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

// GetByID returns nil without error when the patient does not exist.
func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

// GetByWard lists the ward's active patients ordered by bed.
func (r *PatientRepository) GetByWard(ctx context.Context, wardID string) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.WithContext(ctx).
		Where("current_ward_id = ? AND status = ?", wardID, "active").
		Order("bed_number").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ward patients: %w", err)
	}
	return patients, nil
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if patient.ID == "" {
		patient.ID = models.NewID()
	}
	if patient.Status == "" {
		patient.Status = "active"
	}
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return r.invalidate(ctx)
}

// Update merges a partial payload into the stored record and returns it.
func (r *PatientRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Patient, error) {
	result := r.db.WithContext(ctx).Model(&models.Patient{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	if err := r.invalidate(ctx); err != nil {
		log.Printf("Failed to invalidate patient cache: %v", err)
	}
	return r.GetByID(ctx, id)
}

func (r *PatientRepository) invalidate(ctx context.Context) error {
	return r.cache.Delete(ctx, patientListKey)
}
