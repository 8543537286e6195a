package apihandlers

import (
	"net/http"

	"commitlens/internal/app"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine with every API route registered. Shared
// between the serve command and the handler tests.
func NewRouter(appInstance *app.App) *gin.Engine {
	router := gin.Default() // Includes logger and recovery middleware
	router.Use(corsMiddleware())

	h := NewAPIHandler(appInstance)

	router.GET("/", h.RootHandler)
	router.POST("/classify", h.ClassifyHandler)
	router.POST("/classify/batch", h.BatchClassifyHandler)
	router.GET("/types", h.TypesHandler)
	router.GET("/stats", h.StatsHandler)

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// corsMiddleware allows any origin. The classifier serves browser tooling
// (editor extensions, web frontends) and carries no credentials or state.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
