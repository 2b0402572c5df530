package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fkresna23/promptlabidv2/internal/models"
	"github.com/fkresna23/promptlabidv2/internal/services"
	"github.com/fkresna23/promptlabidv2/internal/utils"
)

// Handler serves the signed-in user's own surface.
type Handler struct {
	Engagement *services.EngagementService
}

// CurrentUser godoc
// @Summary Get the authenticated user
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 401 {object} utils.Response
// @Router /auth/user [get]
func (h *Handler) CurrentUser(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", NewUserResponse(u, "")))
}

// FavoritesResponse lists the caller's bookmarked prompts.
type FavoritesResponse struct {
	Prompts []services.PromptView `json:"prompts"`
}

// Favorites godoc
// @Summary List the authenticated user's favorite prompts
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=FavoritesResponse}
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /user/favorites [get]
func (h *Handler) Favorites(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	prompts, err := h.Engagement.FavoritesOf(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch favorites"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", FavoritesResponse{Prompts: prompts}))
}
