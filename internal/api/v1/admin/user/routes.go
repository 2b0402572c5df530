package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/users", h.ListUsers)
	router.PATCH("/users/:id", h.UpdateUser)
	router.DELETE("/users/:id", h.DeleteUser)
}
