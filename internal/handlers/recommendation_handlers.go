package handlers

import (
	"net/http"

	"github.com/SharpHawks/TireShop/internal/models"
	"github.com/gin-gonic/gin"
)

// GetRecommendations is the handler for POST /api/recommendations.
// The endpoint always answers 200 with a (possibly empty) list: a failed
// or empty model call degrades to the rule-based fallback inside the
// recommendation service, never to an error response.
func (h *Handlers) GetRecommendations(c *gin.Context) {
	var prefs models.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidates, err := h.listTires(models.TireFilters{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	recommendations := h.AI.Recommend(c.Request.Context(), prefs, candidates)

	c.JSON(http.StatusOK, recommendations)
}
