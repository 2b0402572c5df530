package prompt

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
	Prompts *services.PromptService
	Audit   *services.AuditService
}

func NewHandler(prompts *services.PromptService, audit *services.AuditService) *Handler {
	return &Handler{Prompts: prompts, Audit: audit}
}

func actorFrom(c *gin.Context) models.User {
	if v, exists := c.Get("user"); exists {
		if u, ok := v.(models.User); ok {
			return u
		}
	}
	return models.User{}
}

// List godoc
// @Summary List all prompts
// @Description Get every prompt, unpublished included. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=AdminPromptListResponse}
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/prompts [get]
func (h *Handler) List(c *gin.Context) {
	prompts, err := h.Prompts.AdminList(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch prompts"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompts retrieved successfully", AdminPromptListResponse{
		Prompts: prompts,
		Total:   len(prompts),
	}))
}

// Update godoc
// @Summary Update a prompt
// @Description Update prompt fields. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Prompt ID"
// @Param body body UpdatePromptRequest true "Fields to update"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/prompts/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid prompt ID"))
		return
	}

	var req UpdatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	updated, err := h.Prompts.Update(c.Request.Context(), uint(id), services.PromptUpdates{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
		IsPremium:   req.IsPremium,
		IsPublished: req.IsPublished,
		Difficulty:  req.Difficulty,
		Type:        req.Type,
	})
	if err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update prompt"))
		return
	}

	h.Audit.Record(c.Request.Context(), actorFrom(c), "prompt.update", "prompt", updated.ID, req)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt updated successfully", updated))
}

// SetPublished godoc
// @Summary Publish or unpublish a prompt
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Prompt ID"
// @Param body body PublishRequest true "Publish flag"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/prompts/{id}/publish [patch]
func (h *Handler) SetPublished(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid prompt ID"))
		return
	}

	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	updated, err := h.Prompts.SetPublished(c.Request.Context(), uint(id), *req.IsPublished)
	if err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update prompt"))
		return
	}

	h.Audit.Record(c.Request.Context(), actorFrom(c), "prompt.publish", "prompt", updated.ID, req)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt updated successfully", updated))
}

// Delete godoc
// @Summary Delete a prompt
// @Description Remove a prompt and its engagement records. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/prompts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid prompt ID"))
		return
	}

	if err := h.Prompts.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete prompt"))
		return
	}

	h.Audit.Record(c.Request.Context(), actorFrom(c), "prompt.delete", "prompt", uint(id), nil)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt deleted successfully", nil))
}
