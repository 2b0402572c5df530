package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fkresna23/promptlabidv2/internal/services"
)

// Handler serves the public platform totals.
type Handler struct {
	Stats *services.StatsService
}

// Get godoc
// @Summary Platform statistics
// @Description Published prompt, user, use and like totals for the homepage.
// @Tags stats
// @Produce json
// @Success 200 {object} services.PlatformStats
// @Failure 500 {object} map[string]string
// @Router /stats [get]
func (h *Handler) Get(c *gin.Context) {
	platformStats, err := h.Stats.PlatformStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, platformStats)
}
