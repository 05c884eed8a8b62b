package handlers

import (
	"PulmoCare/models"
	"PulmoCare/services"

	"github.com/gin-gonic/gin"
)

var patientUpdateColumns = map[string]string{
	"name":          "name",
	"age":           "age",
	"gender":        "gender",
	"diagnosis":     "diagnosis",
	"currentWardId": "current_ward_id",
	"bedNumber":     "bed_number",
	"status":        "status",
}

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, patients)
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	patient, err := h.service.GetByID(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &patient); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	updates := filterUpdates(payload, patientUpdateColumns)
	if len(updates) == 0 {
		c.JSON(400, gin.H{"error": "no updatable fields in payload"})
		return
	}
	patient, err := h.service.Update(c.Request.Context(), c.Param("patient_id"), updates)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, patient)
}
