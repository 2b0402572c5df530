package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/fkresna23/promptlabidv2/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/register", Register)
	auth.POST("/login", Login)
	auth.POST("/logout", middleware.AuthMiddleware(), Logout)
}
