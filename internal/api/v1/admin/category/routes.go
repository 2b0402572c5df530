package category

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.POST("/categories", h.Create)
	router.PATCH("/categories/:id", h.Update)
	router.DELETE("/categories/:id", h.Delete)
}
