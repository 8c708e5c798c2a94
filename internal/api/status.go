package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is stamped at build time.
var Version = "dev"

// GetStatus reports service health.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	storeStatus := "ok"
	if h.stores.Health != nil {
		if err := h.stores.Health.Ping(c.Request.Context()); err != nil {
			storeStatus = "unreachable"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"version":  Version,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
		"store":    storeStatus,
		"facility": h.cfg.Business.FacilityName,
	})
}
