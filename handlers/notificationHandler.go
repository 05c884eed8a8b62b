package handlers

import (
	"PulmoCare/middlewares"
	"PulmoCare/models"
	"PulmoCare/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// GetNotifications lists the caller's notifications; ?unread=true narrows
// to the unread ones.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}
	unreadOnly := c.Query("unread") == "true"
	notifications, err := h.service.GetByUser(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, notifications)
}

// GetUnreadNotifications lists only the caller's unread notifications.
func (h *NotificationHandler) GetUnreadNotifications(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}
	notifications, err := h.service.GetByUser(c.Request.Context(), userID, true)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, notifications)
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var notification models.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &notification); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, notification)
}

func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	notification, err := h.service.MarkRead(c.Request.Context(), c.Param("notification_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, notification)
}

// MarkAllNotificationsRead flags the caller's unread notifications and
// reports the count. Calling it twice in a row reports zero the second time.
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}
	updated, err := h.service.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"updated": updated})
}
