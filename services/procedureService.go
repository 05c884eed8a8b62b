package services

import (
	"PulmoCare/models"
	"PulmoCare/repositories"
	"PulmoCare/utils"
	"context"
	"time"
)

type ProcedureService struct {
	repository *repositories.ProcedureRepository
}

func NewProcedureService(repository *repositories.ProcedureRepository) *ProcedureService {
	return &ProcedureService{repository: repository}
}

func (s *ProcedureService) GetAll(ctx context.Context) ([]models.Procedure, error) {
	return s.repository.GetAll(ctx)
}

// GetToday lists procedures scheduled for the current day.
func (s *ProcedureService) GetToday(ctx context.Context) ([]models.Procedure, error) {
	return s.repository.GetByDate(ctx, time.Now())
}

func (s *ProcedureService) GetByDate(ctx context.Context, date time.Time) ([]models.Procedure, error) {
	return s.repository.GetByDate(ctx, date)
}

func (s *ProcedureService) GetByPatient(ctx context.Context, patientID string) ([]models.Procedure, error) {
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *ProcedureService) Create(ctx context.Context, procedure *models.Procedure) error {
	if err := utils.ValidateProcedureInput(*procedure); err != nil {
		return err
	}
	return s.repository.Create(ctx, procedure)
}

// Update merges a partial payload into the procedure record.
func (s *ProcedureService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Procedure, error) {
	procedure, err := s.repository.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if procedure == nil {
		return nil, ErrNotFound
	}
	return procedure, nil
}
