package handlers

import (
	"PulmoCare/services"
	"errors"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// handleServiceError maps service errors onto HTTP status codes: validation
// failures are 400, missing records 404, workflow conflicts 409, anything
// else 500.
func handleServiceError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		c.JSON(400, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(404, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrSameWard),
		errors.Is(err, services.ErrWardFull):
		c.JSON(409, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": err.Error()})
	}
}

// filterUpdates whitelists a partial JSON payload and renames its keys to
// database columns. Unknown keys are dropped silently.
func filterUpdates(payload map[string]interface{}, allowed map[string]string) map[string]interface{} {
	updates := make(map[string]interface{})
	for key, column := range allowed {
		if value, ok := payload[key]; ok {
			updates[column] = value
		}
	}
	return updates
}
