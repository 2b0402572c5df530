package category

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fkresna23/promptlabidv2/internal/services"
)

// Handler serves the public category surface.
type Handler struct {
	Categories *services.CategoryService
}

// CategoriesResponse wraps the public category listing.
type CategoriesResponse struct {
	Categories []services.CategoryView `json:"categories"`
}

// List godoc
// @Summary List categories
// @Description All categories ordered by name, with published-prompt counts.
// @Tags categories
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 500 {object} map[string]string
// @Router /categories [get]
func (h *Handler) List(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Categories: categories})
}
