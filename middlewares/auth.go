package middlewares

import (
	"fmt"
	"strings"

	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token (or the auth cookie set at
// login) and, when roles are given, enforces one of them.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr = strings.TrimPrefix(h, "Bearer ")
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			resp.Unauthorized(c, "invalid claims")
			c.Abort()
			return
		}

		var role, email string
		if v, ok := claims["role"].(string); ok {
			role = v
		}
		if v, ok := claims["email"].(string); ok {
			email = v
		}
		var userID uint
		if v, ok := claims["userId"].(float64); ok {
			userID = uint(v)
		}

		c.Set("userId", userID)
		c.Set("email", email)
		c.Set("role", role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
