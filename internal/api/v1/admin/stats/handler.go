package stats

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fkresna23/promptlabidv2/internal/services"
	"github.com/fkresna23/promptlabidv2/internal/utils"
)

type Handler struct {
	Stats *services.StatsService
	Audit *services.AuditService
}

func NewHandler(stats *services.StatsService, audit *services.AuditService) *Handler {
	return &Handler{Stats: stats, Audit: audit}
}

// Dashboard godoc
// @Summary Admin dashboard
// @Description Platform totals plus the latest users and prompts. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=services.AdminDashboard}
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	dashboard, err := h.Stats.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch dashboard"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Dashboard retrieved successfully", dashboard))
}

// AuditTrail godoc
// @Summary Recent audit entries
// @Description The latest admin mutation records. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Param limit query int false "Max entries" default(50)
// @Success 200 {object} utils.Response{data=[]models.AuditLog}
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/audit [get]
func (h *Handler) AuditTrail(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	entries, err := h.Audit.RecentEntries(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch audit entries"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Audit entries retrieved successfully", entries))
}
