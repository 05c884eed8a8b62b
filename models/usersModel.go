package models

import (
	"time"
)

// User represents a staff member of the department. Identity normally comes
// from the hospital identity provider; the password column backs the local
// stand-in login flow.
type User struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	Email           string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	FirstName       string    `gorm:"size:100;column:first_name" json:"firstName"`
	LastName        string    `gorm:"size:100;column:last_name" json:"lastName"`
	ProfileImageURL string    `gorm:"size:512;column:profile_image_url" json:"profileImageUrl"`
	Role            string    `gorm:"size:50;not null;default:resident;column:role" json:"role"`
	Department      string    `gorm:"size:100;not null;default:pulmonary;column:department" json:"department"`
	Password        string    `gorm:"size:255;column:password" json:"-"`
	CreatedAt       time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
