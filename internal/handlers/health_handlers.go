package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DatabaseHealth is the handler for GET /api/health/database.
// It runs a fresh check rather than serving the cached report, so an
// admin poking the endpoint sees the current state.
func (h *Handlers) DatabaseHealth(c *gin.Context) {
	health := h.Health.Check(c.Request.Context())
	c.JSON(http.StatusOK, health)
}
