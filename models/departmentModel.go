package models

import (
	"time"

	"gorm.io/gorm"
)

// Ward types used by the department.
const (
	WardTypeICU      = "ICU"
	WardTypeNonICU   = "Non-ICU"
	WardTypeTBWing   = "TB Wing"
	WardTypeBackside = "Backside"
)

// Ward model
type Ward struct {
	ID           string             `gorm:"primaryKey;column:id" json:"id"`
	Name         string             `gorm:"size:100;not null;column:name" json:"name"`
	Type         string             `gorm:"size:50;check:type IN ('ICU', 'Non-ICU', 'TB Wing', 'Backside');not null;column:type" json:"type"`
	TotalBeds    int                `gorm:"not null;column:total_beds" json:"totalBeds"`
	OccupiedBeds int                `gorm:"default:0;column:occupied_beds" json:"occupiedBeds"`
	Color        string             `gorm:"size:50;column:color" json:"color"`
	CreatedAt    time.Time          `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt    time.Time          `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`
	Patients     []Patient          `gorm:"foreignKey:CurrentWardID;references:ID" json:"-"`
	Equipment    []MedicalEquipment `gorm:"foreignKey:WardID;references:ID" json:"-"`
}

func (Ward) TableName() string {
	return "ward"
}

// Patient model. Ownership by a ward changes only through a completed
// transfer.
type Patient struct {
	ID            string     `gorm:"primaryKey;column:id" json:"id"`
	PatientID     string     `gorm:"size:50;not null;unique;index;column:patient_id" json:"patientId"`
	Name          string     `gorm:"size:200;not null;index;column:name" json:"name"`
	Age           int        `gorm:"column:age" json:"age"`
	Gender        string     `gorm:"size:20;column:gender" json:"gender"`
	Diagnosis     string     `gorm:"type:text;column:diagnosis" json:"diagnosis"`
	CurrentWardID *string    `gorm:"index;column:current_ward_id" json:"currentWardId"`
	BedNumber     string     `gorm:"size:20;column:bed_number" json:"bedNumber"`
	AdmissionDate time.Time  `gorm:"autoCreateTime;column:admission_date" json:"admissionDate"`
	Status        string     `gorm:"size:20;check:status IN ('active', 'discharged', 'transferred');default:active;column:status" json:"status"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`
	CurrentWard   *Ward      `gorm:"foreignKey:CurrentWardID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// MedicalEquipment model
type MedicalEquipment struct {
	ID                  string     `gorm:"primaryKey;column:id" json:"id"`
	Name                string     `gorm:"size:200;not null;column:name" json:"name"`
	Type                string     `gorm:"size:50;not null;column:type" json:"type"`
	WardID              *string    `gorm:"index;column:ward_id" json:"wardId"`
	Status              string     `gorm:"size:20;check:status IN ('operational', 'maintenance', 'offline');default:operational;column:status" json:"status"`
	LastMaintenanceDate *time.Time `gorm:"column:last_maintenance_date" json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time `gorm:"column:next_maintenance_date" json:"nextMaintenanceDate"`
	CreatedAt           time.Time  `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`
	Ward                *Ward      `gorm:"foreignKey:WardID;references:ID" json:"-"`
}

func (MedicalEquipment) TableName() string {
	return "medical_equipment"
}

// SeedWards inserts the department's fixed wards when they are missing.
func SeedWards(db *gorm.DB) error {
	initialWards := []Ward{
		{Name: "ICU", Type: WardTypeICU, TotalBeds: 12, Color: "ward-red"},
		{Name: "General Ward", Type: WardTypeNonICU, TotalBeds: 40, Color: "ward-blue"},
		{Name: "TB Wing", Type: WardTypeTBWing, TotalBeds: 20, Color: "ward-green"},
		{Name: "Backside Ward", Type: WardTypeBackside, TotalBeds: 16, Color: "ward-orange"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, ward := range initialWards {
			ward.ID = NewID()
			if err := tx.Where(Ward{Name: ward.Name}).FirstOrCreate(&ward).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
