package services

import (
	"PulmoCare/models"
	"PulmoCare/repositories"
	"PulmoCare/utils"
	"context"
)

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.repository.GetAll(ctx)
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	return patient, nil
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientInput(*patient); err != nil {
		return err
	}
	return s.repository.Create(ctx, patient)
}

// Update merges a partial payload into the patient record.
func (s *PatientService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Patient, error) {
	patient, err := s.repository.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	return patient, nil
}
