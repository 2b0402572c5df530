package upload

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/common/upload")
	{
		group.GET("/token", h.GetOSSToken)
		group.POST("", h.UploadImage)
	}
}
