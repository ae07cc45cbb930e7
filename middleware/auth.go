package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/studyhub-backend/utils"
)

// Context keys set for downstream handlers.
const (
	CtxUserID       = "user_id"
	CtxUserName     = "user_name"
	CtxRole         = "role"
	CtxIsSubscribed = "is_subscribed"
)

// AuthMiddleware accepts either "Authorization: Bearer <token>" or the raw
// token in the x-auth-token header (the web client sends the latter).
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header."})
				c.Abort()
				return
			}
			tokenString = parts[1]
		} else {
			tokenString = c.GetHeader("x-auth-token")
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied."})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid."})
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserName, claims.Name)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxIsSubscribed, claims.IsSubscribed)
		c.Next()
	}
}
