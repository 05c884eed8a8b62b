package handlers

import (
	"PulmoCare/middlewares"
	"PulmoCare/models"
	"PulmoCare/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultRecentTransfers = 5

type TransferHandler struct {
	service *services.TransferService
}

func NewTransferHandler(service *services.TransferService) *TransferHandler {
	return &TransferHandler{service: service}
}

func (h *TransferHandler) GetTransfers(c *gin.Context) {
	transfers, err := h.service.GetAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, transfers)
}

func (h *TransferHandler) GetRecentTransfers(c *gin.Context) {
	limit := defaultRecentTransfers
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(400, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	transfers, err := h.service.GetRecent(c.Request.Context(), limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, transfers)
}

func (h *TransferHandler) GetTransfer(c *gin.Context) {
	transfer, err := h.service.GetByID(c.Request.Context(), c.Param("transfer_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, transfer)
}

// RequestTransfer opens a pending transfer. The requester is taken from the
// session, never from the payload.
func (h *TransferHandler) RequestTransfer(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	var transfer models.PatientTransfer
	if err := c.ShouldBindJSON(&transfer); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	transfer.RequestedByID = userID

	if err := h.service.Request(c.Request.Context(), &transfer); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, transfer)
}

// UpdateTransferStatus moves a transfer through the approval workflow.
func (h *TransferHandler) UpdateTransferStatus(c *gin.Context) {
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
	if payload.Status == "" {
		c.JSON(400, gin.H{"error": "status is required"})
		return
	}

	transfer, err := h.service.UpdateStatus(c.Request.Context(), c.Param("transfer_id"), payload.Status, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, transfer)
}
