package models

import (
	"time"
)

// Procedure statuses.
const (
	ProcedureStatusScheduled  = "scheduled"
	ProcedureStatusInProgress = "in_progress"
	ProcedureStatusCompleted  = "completed"
	ProcedureStatusCancelled  = "cancelled"
)

// Procedure model
type Procedure struct {
	ID            string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID     string    `gorm:"not null;index;column:patient_id" json:"patientId"`
	ProcedureType string    `gorm:"size:50;not null;column:procedure_type" json:"procedureType"`
	Title         string    `gorm:"size:255;not null;column:title" json:"title"`
	Description   string    `gorm:"type:text;column:description" json:"description"`
	ScheduledDate time.Time `gorm:"not null;index;column:scheduled_date" json:"scheduledDate"`
	PerformedByID *string   `gorm:"column:performed_by_id" json:"performedById"`
	Status        string    `gorm:"size:20;check:status IN ('scheduled', 'in_progress', 'completed', 'cancelled');default:scheduled;column:status" json:"status"`
	Notes         string    `gorm:"type:text;column:notes" json:"notes"`
	CreatedAt     time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`
	Patient       *Patient  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Procedure) TableName() string {
	return "procedure"
}
