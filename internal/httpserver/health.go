package httpserver

import (
	"github.com/gin-gonic/gin"

	"chat-with-search/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "chat-with-search"
)

func (srv HTTPServer) status(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.status(c, "healthy")
}

// readyCheck reports ready once routes are mapped.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.status(c, "ready")
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.status(c, "alive")
}
