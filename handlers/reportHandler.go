package handlers

import (
	"PulmoCare/middlewares"
	"PulmoCare/models"
	"PulmoCare/services"
	"PulmoCare/utils"
	"errors"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service   *services.ReportService
	uploadDir string
}

func NewReportHandler(service *services.ReportService, uploadDir string) *ReportHandler {
	return &ReportHandler{service: service, uploadDir: uploadDir}
}

func (h *ReportHandler) GetReports(c *gin.Context) {
	ctx := c.Request.Context()
	if patientID := c.Query("patientId"); patientID != "" {
		reports, err := h.service.GetByPatient(ctx, patientID)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(200, reports)
		return
	}
	reports, err := h.service.GetAll(ctx, c.Query("status"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, reports)
}

// GetPendingReports lists reports still waiting for review.
func (h *ReportHandler) GetPendingReports(c *gin.Context) {
	reports, err := h.service.GetAll(c.Request.Context(), models.ReportStatusPending)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, reports)
}

// GetPatientReports lists one patient's reports.
func (h *ReportHandler) GetPatientReports(c *gin.Context) {
	reports, err := h.service.GetByPatient(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, reports)
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.service.GetByID(c.Request.Context(), c.Param("report_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, report)
}

// UploadReport accepts a multipart form with the document under "file" plus
// patientId, reportType and title fields. The file lands on disk under a
// generated name; the stored record keeps the original one.
func (h *ReportHandler) UploadReport(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "file is required"})
		return
	}
	if err := utils.ValidateUpload(fileHeader); err != nil {
		if errors.Is(err, utils.ErrUploadTooLarge) || errors.Is(err, utils.ErrUploadBadFileType) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	filePath, err := utils.SaveUpload(c, fileHeader, h.uploadDir)
	if err != nil {
		c.JSON(500, gin.H{"error": "failed to store file"})
		return
	}

	report := models.MedicalReport{
		PatientID:    c.PostForm("patientId"),
		ReportType:   c.PostForm("reportType"),
		Title:        c.PostForm("title"),
		FileName:     fileHeader.Filename,
		FilePath:     filePath,
		FileSize:     fileHeader.Size,
		UploadedByID: userID,
	}
	if err := h.service.Create(c.Request.Context(), &report); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, report)
}

// ReviewReport marks a report reviewed or approved, stamping the reviewer.
func (h *ReportHandler) ReviewReport(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	report, err := h.service.Review(c.Request.Context(), c.Param("report_id"), payload.Status, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, report)
}

func (h *ReportHandler) GetReportComments(c *gin.Context) {
	comments, err := h.service.GetComments(c.Request.Context(), c.Param("report_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, comments)
}

func (h *ReportHandler) AddReportComment(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	var comment models.ReportComment
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	comment.ReportID = c.Param("report_id")
	comment.UserID = userID

	if err := h.service.AddComment(c.Request.Context(), &comment); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, comment)
}
