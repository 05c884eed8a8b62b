package handlers

import (
	"PulmoCare/middlewares"
	"PulmoCare/models"
	"PulmoCare/services"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) GetMessages(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}
	messages, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, messages)
}

// GetConversation lists the exchange between the caller and another user.
func (h *MessageHandler) GetConversation(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}
	messages, err := h.service.GetConversation(c.Request.Context(), userID, c.Param("user_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, messages)
}

// SendMessage stores a staff message. The sender is taken from the session.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	var message models.Message
	if err := c.ShouldBindJSON(&message); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	message.SenderID = userID

	if err := h.service.Send(c.Request.Context(), &message); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, message)
}

func (h *MessageHandler) MarkMessageRead(c *gin.Context) {
	message, err := h.service.MarkRead(c.Request.Context(), c.Param("message_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, message)
}
