package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/studyhub-backend/models"
	"github.com/studyhub/studyhub-backend/policy"
)

// RequireAction gates a route on the policy's capability set. Runs after
// AuthMiddleware.
func RequireAction(action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.UserRole(c.GetString(CtxRole))
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied."})
			c.Abort()
			return
		}

		if !policy.Can(role, c.GetBool(CtxIsSubscribed), action) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied. Admin or Teacher role required."})
			c.Abort()
			return
		}
		c.Next()
	}
}
