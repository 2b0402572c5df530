package prompt

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fkresna23/promptlabidv2/internal/models"
	"github.com/fkresna23/promptlabidv2/internal/services"
	"github.com/fkresna23/promptlabidv2/internal/utils"
	"github.com/fkresna23/promptlabidv2/pkg/logger"
)

// Handler serves the public catalog surface.
type Handler struct {
	Catalog    *services.CatalogService
	Prompts    *services.PromptService
	Engagement *services.EngagementService
}

// List godoc
// @Summary List published prompts
// @Description Paginated, filtered catalog listing. Unknown difficulty/type values are not rejected and simply match nothing.
// @Tags prompts
// @Produce json
// @Param category query string false "Category slug"
// @Param search query string false "Substring match on title, description, or content"
// @Param difficulty query string false "Difficulty enum value"
// @Param type query string false "Prompt type enum value"
// @Param isPremium query string false "Exactly 'true' filters to premium; any other value filters to free"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(12)
// @Success 200 {object} ListPromptsResponse
// @Failure 500 {object} map[string]string
// @Router /prompts [get]
func (h *Handler) List(c *gin.Context) {
	raw := services.RawListParams{
		Category:   c.Query("category"),
		Search:     c.Query("search"),
		Difficulty: c.Query("difficulty"),
		Type:       c.Query("type"),
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
	}
	if v, ok := c.GetQuery("isPremium"); ok {
		raw.IsPremium = &v
	}

	filter := services.BuildPromptFilter(raw)
	if (filter.UnknownDifficulty || filter.UnknownType) && logger.Log != nil {
		logger.Log.Warn("catalog filter carries unrecognized enum value",
			zap.String("difficulty", raw.Difficulty),
			zap.String("type", raw.Type),
		)
	}

	page, err := h.Catalog.ListPrompts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListPromptsResponse{
		Prompts:    page.Prompts,
		Pagination: page.Pagination,
	})
}

// Featured godoc
// @Summary Featured prompts
// @Description The most liked and used published prompts, for the homepage.
// @Tags prompts
// @Produce json
// @Success 200 {object} FeaturedResponse
// @Failure 500 {object} map[string]string
// @Router /prompts/featured [get]
func (h *Handler) Featured(c *gin.Context) {
	prompts, err := h.Catalog.FeaturedPrompts(c.Request.Context(), 8)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, FeaturedResponse{Prompts: prompts})
}

// Get godoc
// @Summary Get one published prompt
// @Description Fetch a prompt by slug. The content of premium prompts is withheld unless the caller has a premium subscription or is an admin.
// @Tags prompts
// @Produce json
// @Param slug path string true "Prompt slug"
// @Success 200 {object} services.PromptView
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /prompts/{slug} [get]
func (h *Handler) Get(c *gin.Context) {
	view, err := h.Prompts.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prompt not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if view.IsPremium && !callerHasPremiumAccess(c) {
		redacted := *view
		redacted.Content = ""
		c.JSON(http.StatusOK, redacted)
		return
	}

	c.JSON(http.StatusOK, view)
}

// callerHasPremiumAccess checks the optional bearer token. Anonymous
// callers and free-tier users only see the premium teaser.
func callerHasPremiumAccess(c *gin.Context) bool {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		return false
	}
	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		return false
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return false
	}
	user, err := services.FindUserByID(uint(userIDFloat))
	if err != nil {
		return false
	}
	return user.Subscription == models.SubscriptionPremium || user.Role == models.RoleAdmin
}

// Create godoc
// @Summary Submit a prompt
// @Description Create a prompt. Admin submissions are published immediately; everyone else's await review.
// @Tags prompts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreatePromptRequest true "Prompt details"
// @Success 201 {object} services.PromptView
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /prompts [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	user := userVal.(models.User)

	view, err := h.Prompts.Create(c.Request.Context(), services.CreatePromptInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
		IsPremium:   req.IsPremium,
		Difficulty:  req.Difficulty,
		Type:        req.Type,
	}, user)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create prompt"))
		return
	}

	c.JSON(http.StatusCreated, view)
}

// ToggleLike godoc
// @Summary Like or unlike a prompt
// @Tags prompts
// @Produce json
// @Security ApiKeyAuth
// @Param slug path string true "Prompt slug"
// @Success 200 {object} utils.Response{data=EngagementResponse}
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /prompts/{slug}/like [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	liked, err := h.Engagement.ToggleLike(c.Request.Context(), c.Param("slug"), user.ID)
	if err != nil {
		engagementError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", EngagementResponse{Active: liked}))
}

// ToggleFavorite godoc
// @Summary Favorite or unfavorite a prompt
// @Tags prompts
// @Produce json
// @Security ApiKeyAuth
// @Param slug path string true "Prompt slug"
// @Success 200 {object} utils.Response{data=EngagementResponse}
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /prompts/{slug}/favorite [post]
func (h *Handler) ToggleFavorite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	favorited, err := h.Engagement.ToggleFavorite(c.Request.Context(), c.Param("slug"), user.ID)
	if err != nil {
		engagementError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", EngagementResponse{Active: favorited}))
}

// RecordUse godoc
// @Summary Record a use of a prompt
// @Tags prompts
// @Produce json
// @Security ApiKeyAuth
// @Param slug path string true "Prompt slug"
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /prompts/{slug}/use [post]
func (h *Handler) RecordUse(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Engagement.RecordUse(c.Request.Context(), c.Param("slug"), user.ID); err != nil {
		engagementError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Use recorded", nil))
}

func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return models.User{}, false
	}
	return userVal.(models.User), true
}

func engagementError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrPromptNotFound) {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
		return
	}
	c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
}
