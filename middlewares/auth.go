package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/pkg/resp"
	"github.com/lorpaxx/foodgram-project-react/utils"
	"gorm.io/gorm"
)

// tokenFromHeader extracts the key from "Authorization: Token <key>".
func tokenFromHeader(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Token ") {
		return ""
	}
	return strings.TrimPrefix(h, "Token ")
}

// resolveUser verifies the key signature and that the token row still exists
// (logout deletes the row, revoking the key).
func resolveUser(db *gorm.DB, key, secret string) (uint, bool) {
	userID, err := utils.ParseToken(key, secret)
	if err != nil {
		return 0, false
	}
	var token entity.AuthToken
	if err := db.Where("user_id = ? AND key = ?", userID, key).First(&token).Error; err != nil {
		return 0, false
	}
	return userID, true
}

// AuthRequired rejects requests without a valid token.
func AuthRequired(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := tokenFromHeader(c)
		if key == "" {
			resp.Unauthorized(c, "authentication credentials were not provided")
			c.Abort()
			return
		}
		userID, ok := resolveUser(db, key, secret)
		if !ok {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		c.Set("userId", userID)
		c.Next()
	}
}

// AuthOptional sets the user when a valid token is present and stays
// anonymous otherwise. Listing filters restricted to the requesting user
// need the identity without requiring it.
func AuthOptional(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := tokenFromHeader(c); key != "" {
			if userID, ok := resolveUser(db, key, secret); ok {
				c.Set("userId", userID)
			}
		}
		c.Next()
	}
}
