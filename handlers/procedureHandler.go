package handlers

import (
	"PulmoCare/models"
	"PulmoCare/services"
	"time"

	"github.com/gin-gonic/gin"
)

var procedureUpdateColumns = map[string]string{
	"title":         "title",
	"description":   "description",
	"status":        "status",
	"notes":         "notes",
	"performedById": "performed_by_id",
	"scheduledDate": "scheduled_date",
}

type ProcedureHandler struct {
	service *services.ProcedureService
}

func NewProcedureHandler(service *services.ProcedureService) *ProcedureHandler {
	return &ProcedureHandler{service: service}
}

// GetProcedures lists procedures; ?date narrows to one day (YYYY-MM-DD or
// RFC 3339), ?patientId narrows to one patient.
func (h *ProcedureHandler) GetProcedures(c *gin.Context) {
	ctx := c.Request.Context()
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			date, err = time.Parse(time.RFC3339, raw)
		}
		if err != nil {
			c.JSON(400, gin.H{"error": "date must be YYYY-MM-DD or RFC 3339"})
			return
		}
		procedures, err := h.service.GetByDate(ctx, date)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(200, procedures)
		return
	}
	if patientID := c.Query("patientId"); patientID != "" {
		procedures, err := h.service.GetByPatient(ctx, patientID)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(200, procedures)
		return
	}
	procedures, err := h.service.GetAll(ctx)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, procedures)
}

// GetTodayProcedures lists today's schedule; an empty day yields [].
func (h *ProcedureHandler) GetTodayProcedures(c *gin.Context) {
	procedures, err := h.service.GetToday(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, procedures)
}

// GetPatientProcedures lists one patient's procedures.
func (h *ProcedureHandler) GetPatientProcedures(c *gin.Context) {
	procedures, err := h.service.GetByPatient(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, procedures)
}

func (h *ProcedureHandler) CreateProcedure(c *gin.Context) {
	var procedure models.Procedure
	if err := c.ShouldBindJSON(&procedure); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &procedure); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, procedure)
}

func (h *ProcedureHandler) UpdateProcedure(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	updates := filterUpdates(payload, procedureUpdateColumns)
	if len(updates) == 0 {
		c.JSON(400, gin.H{"error": "no updatable fields in payload"})
		return
	}
	procedure, err := h.service.Update(c.Request.Context(), c.Param("procedure_id"), updates)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, procedure)
}
