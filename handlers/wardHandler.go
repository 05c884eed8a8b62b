package handlers

import (
	"PulmoCare/models"
	"PulmoCare/services"

	"github.com/gin-gonic/gin"
)

type WardHandler struct {
	service *services.WardService
}

func NewWardHandler(service *services.WardService) *WardHandler {
	return &WardHandler{service: service}
}

func (h *WardHandler) GetWards(c *gin.Context) {
	wards, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, wards)
}

func (h *WardHandler) GetWard(c *gin.Context) {
	ward, err := h.service.GetByID(c.Request.Context(), c.Param("ward_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, ward)
}

func (h *WardHandler) GetWardPatients(c *gin.Context) {
	patients, err := h.service.GetPatients(c.Request.Context(), c.Param("ward_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, patients)
}

func (h *WardHandler) CreateWard(c *gin.Context) {
	var ward models.Ward
	if err := c.ShouldBindJSON(&ward); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &ward); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, ward)
}

func (h *WardHandler) UpdateWardOccupancy(c *gin.Context) {
	var payload struct {
		OccupiedBeds int `json:"occupiedBeds"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	ward, err := h.service.UpdateOccupancy(c.Request.Context(), c.Param("ward_id"), payload.OccupiedBeds)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, ward)
}
