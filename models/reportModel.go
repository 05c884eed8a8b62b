package models

import (
	"time"
)

// Report statuses.
const (
	ReportStatusPending  = "pending"
	ReportStatusReviewed = "reviewed"
	ReportStatusApproved = "approved"
)

// MedicalReport model. File metadata points at the uploaded document on disk.
type MedicalReport struct {
	ID           string     `gorm:"primaryKey;column:id" json:"id"`
	PatientID    string     `gorm:"not null;index;column:patient_id" json:"patientId"`
	ReportType   string     `gorm:"size:50;not null;column:report_type" json:"reportType"`
	Title        string     `gorm:"size:255;not null;column:title" json:"title"`
	FileName     string     `gorm:"size:255;not null;column:file_name" json:"fileName"`
	FilePath     string     `gorm:"size:512;not null;column:file_path" json:"filePath"`
	FileSize     int64      `gorm:"column:file_size" json:"fileSize"`
	UploadedByID string     `gorm:"not null;index;column:uploaded_by_id" json:"uploadedById"`
	Status       string     `gorm:"size:20;check:status IN ('pending', 'reviewed', 'approved');default:pending;column:status" json:"status"`
	ReviewedByID *string    `gorm:"column:reviewed_by_id" json:"reviewedById"`
	ReviewedAt   *time.Time `gorm:"column:reviewed_at" json:"reviewedAt"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	Patient      *Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (MedicalReport) TableName() string {
	return "medical_report"
}

// ReportComment model. Append-only, ordered by creation time.
type ReportComment struct {
	ID        string         `gorm:"primaryKey;column:id" json:"id"`
	ReportID  string         `gorm:"not null;index;column:report_id" json:"reportId"`
	UserID    string         `gorm:"not null;column:user_id" json:"userId"`
	Comment   string         `gorm:"type:text;not null;column:comment" json:"comment"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index;column:created_at" json:"createdAt"`
	Report    *MedicalReport `gorm:"foreignKey:ReportID;references:ID" json:"-"`
}

func (ReportComment) TableName() string {
	return "report_comment"
}
