package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/auth/user", h.CurrentUser)
	router.GET("/user/favorites", h.Favorites)
}
