package middleware

import (
	"net/http"
	"strings"

	"vidtube/pkg/jwt"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and attaches the requesting
// user's id to the context under "user_id".
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Authorization header is required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Authorization header must be in format: Bearer <token>"))
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
