package middleware

import (
	"net/http"
	"strings"

	"studyvault/edu-api/model"
	"studyvault/edu-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewAuthMiddleware guards a route group behind a bearer token. On
// success the resolved user ID and the full user row (role included) are
// stashed in the request context for downstream handlers.
//
// The token itself only proves identity at issuance time, so the user
// row is re-fetched here. An account that disappeared after login gets
// the same rejection as a bad token
func NewAuthMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "No authorization header",
				"requestID": requestID,
			})
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid authorization header",
				"requestID": requestID,
			})
			return
		}

		userID, err := security.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid or expired token",
				"requestID": requestID,
			})

			zap.L().Debug("Rejected token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		var user model.User

		err = d.Where("id = ?", userID).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Invalid or expired token",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up token user", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", &user)
		c.Next()
	}
}
