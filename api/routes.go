package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the PDF endpoints and the health probe.
func SetupRoutes(r *gin.Engine, h *Handler) {
	v1 := r.Group("/api/v1/pdf")
	{
		v1.POST("/compress", h.Compress)
		v1.POST("/merge", h.Merge)
		v1.POST("/info", h.Info)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "pdf_service",
		})
	})
}
