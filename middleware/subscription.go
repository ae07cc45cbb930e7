package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studyhub/studyhub-backend/models"
	"github.com/studyhub/studyhub-backend/policy"
)

// RequireSubscription gates AI routes. Staff pass through; students are
// checked against the database rather than the token, so a purchase takes
// effect without re-login.
func RequireSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.UserRole(c.GetString(CtxRole))
		if policy.IsStaff(role) {
			c.Next()
			return
		}

		db := c.MustGet("db").(*gorm.DB)
		var user models.User
		if err := db.Select("is_subscribed").First(&user, "id = ?", c.GetString(CtxUserID)).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
			c.Abort()
			return
		}

		if !policy.Can(role, user.IsSubscribed, policy.ActionUseAI) {
			c.JSON(http.StatusPaymentRequired, gin.H{"message": "Payment required. Please subscribe to use this feature."})
			c.Abort()
			return
		}

		c.Set(CtxIsSubscribed, user.IsSubscribed)
		c.Next()
	}
}
