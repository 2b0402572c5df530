package prompt

import (
	"github.com/gin-gonic/gin"

	"github.com/fkresna23/promptlabidv2/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	prompts := router.Group("/prompts")
	prompts.GET("", h.List)
	prompts.GET("/featured", h.Featured)
	prompts.GET("/:slug", h.Get)

	authorized := prompts.Group("")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.POST("", h.Create)
		authorized.POST("/:slug/like", h.ToggleLike)
		authorized.POST("/:slug/favorite", h.ToggleFavorite)
		authorized.POST("/:slug/use", h.RecordUse)
	}
}
