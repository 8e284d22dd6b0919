package middleware

import (
	"net/http"
	"strings"

	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/models"
	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/services"

	"github.com/gin-gonic/gin"
)

func JWTAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		identity, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("username", identity.Username)
		c.Set("role", identity.Role)
		c.Next()
	}
}

// RequireTeacher gates mutating endpoints to the teacher role. Must run
// after JWTAuth.
func RequireTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.GetString("role") {
		case models.RoleTeacher:
			c.Next()
		case models.RoleStudent:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "teacher role required"})
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "unknown role"})
		}
	}
}
