package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// health handles GET /health
func (s *HTTPServerAdapter) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// componentHealth handles GET /api/health
func (s *HTTPServerAdapter) componentHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status := "healthy"
	code := http.StatusOK
	for _, result := range results {
		if result.Status != "healthy" {
			status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, gin.H{
		"status":     status,
		"components": results,
	})
}
