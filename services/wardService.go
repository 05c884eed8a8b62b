package services

import (
	"PulmoCare/models"
	"PulmoCare/repositories"
	"PulmoCare/utils"
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type WardService struct {
	wards    *repositories.WardRepository
	patients *repositories.PatientRepository
}

func NewWardService(wards *repositories.WardRepository, patients *repositories.PatientRepository) *WardService {
	return &WardService{wards: wards, patients: patients}
}

func (s *WardService) GetAll(ctx context.Context) ([]models.Ward, error) {
	return s.wards.GetAll(ctx)
}

func (s *WardService) GetByID(ctx context.Context, id string) (*models.Ward, error) {
	ward, err := s.wards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, ErrNotFound
	}
	return ward, nil
}

// GetPatients lists the ward's active patients ordered by bed number.
func (s *WardService) GetPatients(ctx context.Context, wardID string) ([]models.Patient, error) {
	ward, err := s.wards.GetByID(ctx, wardID)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, ErrNotFound
	}
	return s.patients.GetByWard(ctx, wardID)
}

func (s *WardService) Create(ctx context.Context, ward *models.Ward) error {
	if err := utils.ValidateWardInput(*ward); err != nil {
		return err
	}
	return s.wards.Create(ctx, ward)
}

// UpdateOccupancy sets the occupied bed count for manual census corrections.
// The count must stay within the ward's capacity.
func (s *WardService) UpdateOccupancy(ctx context.Context, wardID string, occupiedBeds int) (*models.Ward, error) {
	ward, err := s.wards.GetByID(ctx, wardID)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, ErrNotFound
	}
	if err := validation.Validate(occupiedBeds, validation.Min(0), validation.Max(ward.TotalBeds)); err != nil {
		return nil, validation.Errors{"occupiedBeds": err}
	}
	return s.wards.UpdateOccupancy(ctx, wardID, occupiedBeds)
}
