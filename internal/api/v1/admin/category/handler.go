package category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fkresna23/promptlabidv2/internal/models"
	"github.com/fkresna23/promptlabidv2/internal/services"
	"github.com/fkresna23/promptlabidv2/internal/utils"
)

type Handler struct {
	Categories *services.CategoryService
	Audit      *services.AuditService
}

func NewHandler(categories *services.CategoryService, audit *services.AuditService) *Handler {
	return &Handler{Categories: categories, Audit: audit}
}

func actorFrom(c *gin.Context) models.User {
	if v, exists := c.Get("user"); exists {
		if u, ok := v.(models.User); ok {
			return u
		}
	}
	return models.User{}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
}

// Create godoc
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body CreateCategoryRequest true "Category details"
// @Success 201 {object} utils.Response{data=models.Category}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/categories [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}

	if err := h.Categories.Create(c.Request.Context(), category); err != nil {
		if errors.Is(err, services.ErrCategorySlugTaken) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create category"))
		return
	}

	h.Audit.Record(c.Request.Context(), actorFrom(c), "category.create", "category", category.ID, req)

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Category created successfully", category))
}

// Update godoc
// @Summary Update a category
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Category ID"
// @Param body body UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} utils.Response{data=models.Category}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/categories/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid category ID"))
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	updated, err := h.Categories.Update(c.Request.Context(), uint(id), services.CategoryUpdates{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update category"))
		return
	}

	h.Audit.Record(c.Request.Context(), actorFrom(c), "category.update", "category", updated.ID, req)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Category updated successfully", updated))
}

// Delete godoc
// @Summary Delete a category
// @Description Delete an empty category. Categories that still have prompts are refused.
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path int true "Category ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/categories/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid category ID"))
		return
	}

	if err := h.Categories.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Category not found"))
			return
		}
		if errors.Is(err, services.ErrCategoryInUse) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete category"))
		return
	}

	h.Audit.Record(c.Request.Context(), actorFrom(c), "category.delete", "category", uint(id), nil)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Category deleted successfully", nil))
}
