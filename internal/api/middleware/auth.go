package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/swajayfour/swajay_go_server/internal/pkg/jwt"
	"github.com/swajayfour/swajay_go_server/internal/pkg/response"
)

const (
	UserIDKey = "userID"
	PhoneKey  = "phone"
)

// Auth requires a valid bearer token and stores the claims in the context.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		claims, err := jwt.ParseToken(tokenString, jwtSecret)
		if err != nil {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(PhoneKey, claims.Phone)
		c.Next()
	}
}

// GetUserID reads the authenticated account id from the context.
func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := userID.(int64)
	return id, ok
}

// GetPhone reads the authenticated phone from the context.
func GetPhone(c *gin.Context) (string, bool) {
	phone, exists := c.Get(PhoneKey)
	if !exists {
		return "", false
	}
	p, ok := phone.(string)
	return p, ok
}
