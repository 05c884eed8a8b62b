package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler answers load balancer probes at the root path.
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetupRootRoute sets up the root and health routes.
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", rootHandler)
	router.GET("/healthz", rootHandler)
}
