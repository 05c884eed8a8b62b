package handlers

import (
	"PulmoCare/models"
	"PulmoCare/services"

	"github.com/gin-gonic/gin"
)

var equipmentUpdateColumns = map[string]string{
	"name":                "name",
	"type":                "type",
	"wardId":              "ward_id",
	"status":              "status",
	"lastMaintenanceDate": "last_maintenance_date",
	"nextMaintenanceDate": "next_maintenance_date",
}

type EquipmentHandler struct {
	service *services.EquipmentService
}

func NewEquipmentHandler(service *services.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	ctx := c.Request.Context()
	if wardID := c.Query("wardId"); wardID != "" {
		equipment, err := h.service.GetByWard(ctx, wardID)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(200, equipment)
		return
	}
	equipment, err := h.service.GetAll(ctx)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, equipment)
}

// GetWardEquipment lists the equipment assigned to one ward.
func (h *EquipmentHandler) GetWardEquipment(c *gin.Context) {
	equipment, err := h.service.GetByWard(c.Request.Context(), c.Param("ward_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, equipment)
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var equipment models.MedicalEquipment
	if err := c.ShouldBindJSON(&equipment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &equipment); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, equipment)
}

func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	updates := filterUpdates(payload, equipmentUpdateColumns)
	if len(updates) == 0 {
		c.JSON(400, gin.H{"error": "no updatable fields in payload"})
		return
	}
	equipment, err := h.service.Update(c.Request.Context(), c.Param("equipment_id"), updates)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, equipment)
}
