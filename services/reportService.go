package services

import (
	"PulmoCare/models"
	"PulmoCare/realtime"
	"PulmoCare/repositories"
	"PulmoCare/utils"
	"context"
	"fmt"
	"log"
	"time"
)

type ReportService struct {
	reports       *repositories.ReportRepository
	notifications *repositories.NotificationRepository
	hub           broadcaster
}

func NewReportService(reports *repositories.ReportRepository, notifications *repositories.NotificationRepository, hub broadcaster) *ReportService {
	return &ReportService{reports: reports, notifications: notifications, hub: hub}
}

// GetAll lists reports, optionally filtered by status.
func (s *ReportService) GetAll(ctx context.Context, status string) ([]models.MedicalReport, error) {
	if status != "" {
		return s.reports.GetByStatus(ctx, status)
	}
	return s.reports.GetAll(ctx)
}

func (s *ReportService) GetByPatient(ctx context.Context, patientID string) ([]models.MedicalReport, error) {
	return s.reports.GetByPatient(ctx, patientID)
}

func (s *ReportService) GetByID(ctx context.Context, id string) (*models.MedicalReport, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNotFound
	}
	return report, nil
}

// Create stores an uploaded report and confirms the upload to the uploader
// through a notification pushed over their open connections.
func (s *ReportService) Create(ctx context.Context, report *models.MedicalReport) error {
	if err := utils.ValidateReportInput(*report); err != nil {
		return err
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return err
	}
	s.notify(ctx, models.Notification{
		UserID:      report.UploadedByID,
		Title:       "Report uploaded",
		Message:     fmt.Sprintf("Your report %q was uploaded and is pending review.", report.Title),
		Type:        models.NotificationTypeInfo,
		RelatedID:   report.ID,
		RelatedType: "medical_report",
	})
	return nil
}

// Review updates the report's status and stamps the reviewer.
func (s *ReportService) Review(ctx context.Context, id, status, reviewerID string) (*models.MedicalReport, error) {
	if status != models.ReportStatusReviewed && status != models.ReportStatusApproved {
		return nil, fmt.Errorf("status %s: %w", status, ErrInvalidTransition)
	}
	now := time.Now()
	report, err := s.reports.Update(ctx, id, map[string]interface{}{
		"status":         status,
		"reviewed_by_id": reviewerID,
		"reviewed_at":    now,
	})
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNotFound
	}
	s.notify(ctx, models.Notification{
		UserID:      report.UploadedByID,
		Title:       "Report " + status,
		Message:     fmt.Sprintf("Your report %q was %s.", report.Title, status),
		Type:        models.NotificationTypeSuccess,
		RelatedID:   report.ID,
		RelatedType: "medical_report",
	})
	return report, nil
}

func (s *ReportService) GetComments(ctx context.Context, reportID string) ([]models.ReportComment, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNotFound
	}
	return s.reports.GetComments(ctx, reportID)
}

// AddComment appends a comment and alerts the report's uploader unless they
// wrote the comment themselves.
func (s *ReportService) AddComment(ctx context.Context, comment *models.ReportComment) error {
	if err := utils.ValidateCommentInput(*comment); err != nil {
		return err
	}
	report, err := s.reports.GetByID(ctx, comment.ReportID)
	if err != nil {
		return err
	}
	if report == nil {
		return fmt.Errorf("report %s: %w", comment.ReportID, ErrNotFound)
	}
	if err := s.reports.CreateComment(ctx, comment); err != nil {
		return err
	}
	if report.UploadedByID != comment.UserID {
		s.notify(ctx, models.Notification{
			UserID:      report.UploadedByID,
			Title:       "New comment on your report",
			Message:     fmt.Sprintf("A colleague commented on %q.", report.Title),
			Type:        models.NotificationTypeInfo,
			RelatedID:   report.ID,
			RelatedType: "medical_report",
		})
	}
	return nil
}

// notify persists the notification and pushes it; a persistence failure is
// logged rather than failing the report operation.
func (s *ReportService) notify(ctx context.Context, notification models.Notification) {
	if err := s.notifications.Create(ctx, &notification); err != nil {
		log.Printf("Failed to create report notification: %v", err)
		return
	}
	s.hub.BroadcastToUser(notification.UserID, realtime.Event{Type: "notification", Data: notification})
}
