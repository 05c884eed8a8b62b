package handlers

import (
	"PulmoCare/middlewares"
	"PulmoCare/models"
	"PulmoCare/services"

	"github.com/gin-gonic/gin"
)

type CmeHandler struct {
	service *services.CmeService
}

func NewCmeHandler(service *services.CmeService) *CmeHandler {
	return &CmeHandler{service: service}
}

func (h *CmeHandler) GetCmeEvents(c *gin.Context) {
	events, err := h.service.GetEvents(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, events)
}

func (h *CmeHandler) GetCmeEvent(c *gin.Context) {
	event, err := h.service.GetEvent(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, event)
}

func (h *CmeHandler) CreateCmeEvent(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	var event models.CmeEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	event.OrganizedByID = userID

	if err := h.service.CreateEvent(c.Request.Context(), &event); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, event)
}

func (h *CmeHandler) GetCmeVotes(c *gin.Context) {
	votes, err := h.service.GetVotes(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, votes)
}

// VoteCmeEvent records the caller's attendance vote; voting again replaces
// the earlier vote.
func (h *CmeHandler) VoteCmeEvent(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	var payload struct {
		WillAttend bool `json:"willAttend"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Vote(c.Request.Context(), c.Param("event_id"), userID, payload.WillAttend); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"eventId": c.Param("event_id"), "willAttend": payload.WillAttend})
}
