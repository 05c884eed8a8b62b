package repositories

import (
	"PulmoCare/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) GetAll(ctx context.Context) ([]models.MedicalEquipment, error) {
	var equipment []models.MedicalEquipment
	err := r.db.WithContext(ctx).Order("name").Find(&equipment).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return equipment, nil
}

func (r *EquipmentRepository) GetByWard(ctx context.Context, wardID string) ([]models.MedicalEquipment, error) {
	var equipment []models.MedicalEquipment
	err := r.db.WithContext(ctx).
		Where("ward_id = ?", wardID).
		Order("name").
		Find(&equipment).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ward equipment: %w", err)
	}
	return equipment, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, equipment *models.MedicalEquipment) error {
	if equipment.ID == "" {
		equipment.ID = models.NewID()
	}
	if equipment.Status == "" {
		equipment.Status = "operational"
	}
	if err := r.db.WithContext(ctx).Create(equipment).Error; err != nil {
		return fmt.Errorf("failed to create equipment: %w", err)
	}
	return nil
}

// Update merges a partial payload into the stored record and returns it.
func (r *EquipmentRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.MedicalEquipment, error) {
	result := r.db.WithContext(ctx).Model(&models.MedicalEquipment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	var equipment models.MedicalEquipment
	if err := r.db.WithContext(ctx).First(&equipment, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload equipment: %w", err)
	}
	return &equipment, nil
}
