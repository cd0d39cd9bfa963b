package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler exposes liveness and readiness endpoints.
// The service has no downstream dependencies, so readiness only reports build info and uptime.
type HealthHandler struct {
	version string
	started time.Time
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, started: time.Now()}
}

// Liveness responds OK if the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": h.version,
		"uptime":  time.Since(h.started).Truncate(time.Second).String(),
	})
}
