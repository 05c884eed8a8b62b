package services

import "errors"

// Sentinel errors handlers translate into HTTP status codes.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrSameWard          = errors.New("destination ward matches the patient's current ward")
	ErrWardFull          = errors.New("destination ward has no free beds")
)
