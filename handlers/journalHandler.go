package handlers

import (
	"PulmoCare/middlewares"
	"PulmoCare/models"
	"PulmoCare/services"

	"github.com/gin-gonic/gin"
)

type JournalHandler struct {
	service *services.JournalService
}

func NewJournalHandler(service *services.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

func (h *JournalHandler) GetJournalArticles(c *gin.Context) {
	articles, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, articles)
}

func (h *JournalHandler) GetJournalArticle(c *gin.Context) {
	article, err := h.service.GetByID(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, article)
}

func (h *JournalHandler) CreateJournalArticle(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	var article models.JournalArticle
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	article.SharedByID = userID

	if err := h.service.Create(c.Request.Context(), &article); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, article)
}
