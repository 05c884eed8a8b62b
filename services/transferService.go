package services

import (
	"PulmoCare/models"
	"PulmoCare/realtime"
	"PulmoCare/utils"
	"context"
	"fmt"
)

// transitions is the closed table of allowed status changes. Anything not
// listed here is rejected; completed and cancelled are terminal.
var transitions = map[string][]string{
	models.TransferStatusPending:  {models.TransferStatusApproved, models.TransferStatusCancelled},
	models.TransferStatusApproved: {models.TransferStatusCompleted, models.TransferStatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type transferStore interface {
	GetAll(ctx context.Context) ([]models.PatientTransfer, error)
	GetByStatus(ctx context.Context, status string) ([]models.PatientTransfer, error)
	GetRecent(ctx context.Context, limit int) ([]models.PatientTransfer, error)
	GetByID(ctx context.Context, id string) (*models.PatientTransfer, error)
	Create(ctx context.Context, transfer *models.PatientTransfer) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.PatientTransfer, error)
	Complete(ctx context.Context, id string) (*models.PatientTransfer, error)
}

type patientStore interface {
	GetByID(ctx context.Context, id string) (*models.Patient, error)
}

type wardStore interface {
	GetByID(ctx context.Context, id string) (*models.Ward, error)
}

// broadcaster is the slice of the hub the transfer workflow needs.
type broadcaster interface {
	BroadcastToAll(event realtime.Event)
	BroadcastToWard(wardID string, event realtime.Event)
	BroadcastToUser(userID string, event realtime.Event)
}

type TransferService struct {
	transfers transferStore
	patients  patientStore
	wards     wardStore
	hub       broadcaster
}

func NewTransferService(transfers transferStore, patients patientStore, wards wardStore, hub broadcaster) *TransferService {
	return &TransferService{transfers: transfers, patients: patients, wards: wards, hub: hub}
}

// GetAll lists transfers, optionally filtered by status.
func (s *TransferService) GetAll(ctx context.Context, status string) ([]models.PatientTransfer, error) {
	if status != "" {
		return s.transfers.GetByStatus(ctx, status)
	}
	return s.transfers.GetAll(ctx)
}

func (s *TransferService) GetRecent(ctx context.Context, limit int) ([]models.PatientTransfer, error) {
	return s.transfers.GetRecent(ctx, limit)
}

func (s *TransferService) GetByID(ctx context.Context, id string) (*models.PatientTransfer, error) {
	transfer, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, ErrNotFound
	}
	return transfer, nil
}

// Request opens a pending transfer. The origin ward is stamped from the
// patient's current assignment, never trusted from the payload. Requests
// into the patient's own ward or into a full ward are rejected.
func (s *TransferService) Request(ctx context.Context, transfer *models.PatientTransfer) error {
	if err := utils.ValidateTransferInput(*transfer); err != nil {
		return err
	}

	patient, err := s.patients.GetByID(ctx, transfer.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return fmt.Errorf("patient %s: %w", transfer.PatientID, ErrNotFound)
	}

	ward, err := s.wards.GetByID(ctx, transfer.ToWardID)
	if err != nil {
		return err
	}
	if ward == nil {
		return fmt.Errorf("ward %s: %w", transfer.ToWardID, ErrNotFound)
	}

	if patient.CurrentWardID != nil && *patient.CurrentWardID == transfer.ToWardID {
		return ErrSameWard
	}
	if ward.OccupiedBeds >= ward.TotalBeds {
		return ErrWardFull
	}

	transfer.FromWardID = patient.CurrentWardID
	transfer.Status = models.TransferStatusPending
	transfer.ApprovedByID = nil
	transfer.CompletedAt = nil

	if err := s.transfers.Create(ctx, transfer); err != nil {
		return err
	}

	s.hub.BroadcastToWard(transfer.ToWardID, realtime.Event{Type: "transfer_request", Data: transfer})
	return nil
}

// UpdateStatus moves a transfer through the workflow. Approvals stamp the
// acting user; completion delegates to the transactional path that also
// moves the patient and adjusts both wards' bed counts.
func (s *TransferService) UpdateStatus(ctx context.Context, id, newStatus, actorID string) (*models.PatientTransfer, error) {
	transfer, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, ErrNotFound
	}

	if !transitionAllowed(transfer.Status, newStatus) {
		return nil, fmt.Errorf("%s to %s: %w", transfer.Status, newStatus, ErrInvalidTransition)
	}

	var updated *models.PatientTransfer
	switch newStatus {
	case models.TransferStatusCompleted:
		updated, err = s.transfers.Complete(ctx, id)
	case models.TransferStatusApproved:
		updated, err = s.transfers.Update(ctx, id, map[string]interface{}{
			"status":         newStatus,
			"approved_by_id": actorID,
		})
	default:
		updated, err = s.transfers.Update(ctx, id, map[string]interface{}{"status": newStatus})
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	s.hub.BroadcastToAll(realtime.Event{Type: "transfer_update", Data: updated})
	return updated, nil
}
