package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves public configuration and readiness probes.
type SystemHandler struct {
	facade SystemFacade
}

// NewSystemHandler constructs SystemHandler.
func NewSystemHandler(facade SystemFacade) *SystemHandler {
	return &SystemHandler{facade: facade}
}

// GatewayKey handles GET /api/config/razorpay.
func (h *SystemHandler) GatewayKey(c *gin.Context) {
	c.String(http.StatusOK, h.facade.GatewayKeyID())
}

// Health handles GET /api/health.
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.facade.Health(c.Request.Context()); err != nil {
		_ = c.Error(err)
		respondMessage(c, http.StatusServiceUnavailable, "unavailable")
		return
	}
	respondMessage(c, http.StatusOK, "ok")
}
