package repositories

import (
	"PulmoCare/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) GetAll(ctx context.Context) ([]models.MedicalReport, error) {
	var reports []models.MedicalReport
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}
	return reports, nil
}

// GetByID returns nil without error when the report does not exist.
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*models.MedicalReport, error) {
	var report models.MedicalReport
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

func (r *ReportRepository) GetByPatient(ctx context.Context, patientID string) ([]models.MedicalReport, error) {
	var reports []models.MedicalReport
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get patient reports: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) GetByStatus(ctx context.Context, status string) ([]models.MedicalReport, error) {
	var reports []models.MedicalReport
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reports by status: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) Create(ctx context.Context, report *models.MedicalReport) error {
	if report.ID == "" {
		report.ID = models.NewID()
	}
	if report.Status == "" {
		report.Status = models.ReportStatusPending
	}
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// Update merges a partial payload into the stored report and returns it.
func (r *ReportRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.MedicalReport, error) {
	result := r.db.WithContext(ctx).Model(&models.MedicalReport{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// GetComments lists a report's comments oldest first.
func (r *ReportRepository) GetComments(ctx context.Context, reportID string) ([]models.ReportComment, error) {
	var comments []models.ReportComment
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get report comments: %w", err)
	}
	return comments, nil
}

func (r *ReportRepository) CreateComment(ctx context.Context, comment *models.ReportComment) error {
	if comment.ID == "" {
		comment.ID = models.NewID()
	}
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create report comment: %w", err)
	}
	return nil
}
