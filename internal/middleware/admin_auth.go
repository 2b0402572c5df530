package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fkresna23/promptlabidv2/internal/models"
	"github.com/fkresna23/promptlabidv2/internal/services"
	"github.com/fkresna23/promptlabidv2/internal/utils"
)

// AdminAuthMiddleware validates that the user has admin privileges.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			c.Abort()
			return
		}

		isDenylisted, err := services.IsDenylisted(tokenString)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check token status"))
			c.Abort()
			return
		}
		if isDenylisted {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Token has been revoked"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Invalid or expired token"))
			c.Abort()
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden: Admins only"))
			c.Abort()
			return
		}

		// Load the full user for handlers that audit the actor. Skipped
		// in TestMode so middleware tests don't need a database.
		if gin.Mode() != gin.TestMode {
			userIDFloat, ok := claims["user_id"].(float64)
			if ok {
				userID := uint(userIDFloat)
				user, err := services.FindUserByID(userID)
				if err == nil {
					c.Set("user", user)
				}
			}
		}

		c.Next()
	}
}
