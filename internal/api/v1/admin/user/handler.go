package user

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fkresna23/promptlabidv2/internal/models"
	"github.com/fkresna23/promptlabidv2/internal/services"
	"github.com/fkresna23/promptlabidv2/internal/utils"
)

type Handler struct {
	Audit *services.AuditService
}

func NewHandler(audit *services.AuditService) *Handler {
	return &Handler{Audit: audit}
}

func actorFrom(c *gin.Context) models.User {
	if v, exists := c.Get("user"); exists {
		if u, ok := v.(models.User); ok {
			return u
		}
	}
	return models.User{}
}

type UserListItem struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	Subscription string    `json:"subscription"`
	PromptsCount int64     `json:"promptsCount"`
	LikesCount   int64     `json:"likesCount"`
	UsesCount    int64     `json:"usesCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type UserListResponse struct {
	Users []UserListItem `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func newUserListItem(u services.UserWithCounts) UserListItem {
	return UserListItem{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		Status:       u.Status,
		Subscription: u.Subscription,
		PromptsCount: u.PromptsCount,
		LikesCount:   u.LikesCount,
		UsesCount:    u.UsesCount,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ListUsers godoc
// @Summary List all users
// @Description Get a paginated list of users with their content totals. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.Response{data=UserListResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	users, total, err := services.FindUsers(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch users"))
		return
	}

	items := make([]UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, newUserListItem(u))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Users retrieved successfully", UserListResponse{
		Users: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}))
}

// UpdateUserRequest represents the request body for updating a user
type UpdateUserRequest struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Password     *string `json:"password,omitempty" binding:"omitempty,min=8"`
	Role         *string `json:"role,omitempty" binding:"omitempty,oneof=USER ADMIN"`
	Status       *string `json:"status,omitempty" binding:"omitempty,oneof=ACTIVE SUSPENDED"`
	Subscription *string `json:"subscription,omitempty" binding:"omitempty,oneof=FREE PREMIUM"`
}

// UpdateUser godoc
// @Summary Update a user
// @Description Update user details. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Param body body UpdateUserRequest true "User details to update"
// @Success 200 {object} utils.Response{data=UserListItem}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/users/{id} [patch]
func (h *Handler) UpdateUser(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Password != nil {
		updates["password"] = *req.Password
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Subscription != nil {
		updates["subscription"] = *req.Subscription
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	actor := actorFrom(c)

	updatedUser, err := services.UpdateUser(uint(id), updates, actor.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
			return
		}
		if errors.Is(err, services.ErrOptimisticLock) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update user"))
		return
	}

	h.Audit.Record(c.Request.Context(), actor, "user.update", "user", updatedUser.ID, req)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User updated successfully", newUserListItem(services.UserWithCounts{User: *updatedUser})))
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Remove a user together with their prompts and engagement records. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	actor := actorFrom(c)
	if actor.ID == uint(id) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Cannot delete your own account"))
		return
	}

	if err := services.DeleteUser(uint(id)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete user"))
		return
	}

	h.Audit.Record(c.Request.Context(), actor, "user.delete", "user", uint(id), nil)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User deleted successfully", nil))
}
