package models

import "github.com/google/uuid"

// NewID generates the opaque identifier used as primary key for every entity.
func NewID() string {
	return uuid.NewString()
}
