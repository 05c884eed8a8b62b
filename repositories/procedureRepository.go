package repositories

import (
	"PulmoCare/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type ProcedureRepository struct {
	db *gorm.DB
}

func NewProcedureRepository(db *gorm.DB) *ProcedureRepository {
	return &ProcedureRepository{db: db}
}

func (r *ProcedureRepository) GetAll(ctx context.Context) ([]models.Procedure, error) {
	var procedures []models.Procedure
	err := r.db.WithContext(ctx).Order("scheduled_date DESC").Find(&procedures).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get procedures: %w", err)
	}
	return procedures, nil
}

// GetByDate lists procedures scheduled within the given day, earliest first.
// A day with nothing scheduled yields an empty slice.
func (r *ProcedureRepository) GetByDate(ctx context.Context, date time.Time) ([]models.Procedure, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	procedures := []models.Procedure{}
	err := r.db.WithContext(ctx).
		Where("scheduled_date >= ? AND scheduled_date < ?", startOfDay, endOfDay).
		Order("scheduled_date").
		Find(&procedures).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get procedures by date: %w", err)
	}
	return procedures, nil
}

func (r *ProcedureRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Procedure, error) {
	var procedures []models.Procedure
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("scheduled_date DESC").
		Find(&procedures).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get patient procedures: %w", err)
	}
	return procedures, nil
}

func (r *ProcedureRepository) Create(ctx context.Context, procedure *models.Procedure) error {
	if procedure.ID == "" {
		procedure.ID = models.NewID()
	}
	if procedure.Status == "" {
		procedure.Status = models.ProcedureStatusScheduled
	}
	if err := r.db.WithContext(ctx).Create(procedure).Error; err != nil {
		return fmt.Errorf("failed to create procedure: %w", err)
	}
	return nil
}

// Update merges a partial payload into the stored record and returns it.
func (r *ProcedureRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Procedure, error) {
	result := r.db.WithContext(ctx).Model(&models.Procedure{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update procedure: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	var procedure models.Procedure
	if err := r.db.WithContext(ctx).First(&procedure, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload procedure: %w", err)
	}
	return &procedure, nil
}
