package httpserver

import (
	"furniture-chatbot/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Victory Furniture assistant is up"
	HealthVersion = "1.0.0"
	ServiceName   = "furniture-chatbot"
)

// KnowledgeBaseStats summarizes the catalog loaded at startup.
type KnowledgeBaseStats struct {
	Products   int `json:"products"`
	Categories int `json:"categories"`
	Branches   int `json:"branches"`
}

func (srv HTTPServer) status(c *gin.Context, state string) {
	response.OK(c, gin.H{
		"status":         state,
		"message":        HealthMessage,
		"version":        HealthVersion,
		"service":        ServiceName,
		"knowledge_base": srv.stats,
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

// readyCheck handles readiness checks. The knowledge base is loaded before the
// server listens, so a running server is ready.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.status(c, "ready")
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.status(c, "alive")
}
