package prompt

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/prompts", h.List)
	router.PATCH("/prompts/:id", h.Update)
	router.PATCH("/prompts/:id/publish", h.SetPublished)
	router.DELETE("/prompts/:id", h.Delete)
}
