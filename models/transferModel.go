package models

import (
	"time"
)

// Transfer statuses.
const (
	TransferStatusPending   = "pending"
	TransferStatusApproved  = "approved"
	TransferStatusCompleted = "completed"
	TransferStatusCancelled = "cancelled"
)

// PatientTransfer records a request to move a patient between wards.
// FromWardID is nil when the patient had no prior ward; ApprovedByID stays
// nil until an approver acts.
type PatientTransfer struct {
	ID            string     `gorm:"primaryKey;column:id" json:"id"`
	PatientID     string     `gorm:"not null;index;column:patient_id" json:"patientId"`
	FromWardID    *string    `gorm:"column:from_ward_id" json:"fromWardId"`
	ToWardID      string     `gorm:"not null;index;column:to_ward_id" json:"toWardId"`
	Reason        string     `gorm:"type:text;column:reason" json:"reason"`
	HandoverNotes string     `gorm:"type:text;column:handover_notes" json:"handoverNotes"`
	RequestedByID string     `gorm:"not null;index;column:requested_by_id" json:"requestedById"`
	ApprovedByID  *string    `gorm:"column:approved_by_id" json:"approvedById"`
	Status        string     `gorm:"size:20;check:status IN ('pending', 'approved', 'completed', 'cancelled');default:pending;column:status" json:"status"`
	RequestedAt   time.Time  `gorm:"autoCreateTime;index;column:requested_at" json:"requestedAt"`
	CompletedAt   *time.Time `gorm:"column:completed_at" json:"completedAt"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	Patient       *Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	FromWard      *Ward      `gorm:"foreignKey:FromWardID;references:ID" json:"-"`
	ToWard        *Ward      `gorm:"foreignKey:ToWardID;references:ID" json:"-"`
}

func (PatientTransfer) TableName() string {
	return "patient_transfer"
}
