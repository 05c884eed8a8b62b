package services

import (
	"PulmoCare/models"
	"PulmoCare/repositories"
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type EquipmentService struct {
	repository *repositories.EquipmentRepository
}

func NewEquipmentService(repository *repositories.EquipmentRepository) *EquipmentService {
	return &EquipmentService{repository: repository}
}

func (s *EquipmentService) GetAll(ctx context.Context) ([]models.MedicalEquipment, error) {
	return s.repository.GetAll(ctx)
}

func (s *EquipmentService) GetByWard(ctx context.Context, wardID string) ([]models.MedicalEquipment, error) {
	return s.repository.GetByWard(ctx, wardID)
}

func (s *EquipmentService) Create(ctx context.Context, equipment *models.MedicalEquipment) error {
	err := validation.ValidateStruct(equipment,
		validation.Field(&equipment.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&equipment.Type, validation.Required, validation.Length(1, 50)),
	)
	if err != nil {
		return err
	}
	return s.repository.Create(ctx, equipment)
}

// Update merges a partial payload into the equipment record.
func (s *EquipmentService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.MedicalEquipment, error) {
	equipment, err := s.repository.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, ErrNotFound
	}
	return equipment, nil
}
