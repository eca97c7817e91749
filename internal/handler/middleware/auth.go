package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"campus-booking/internal/domain/identity"
	"campus-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxActorKey = "actor"

type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates the bearer token and places the resulting actor in
// the request context. Every route below /api requires it.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		actor, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

func GetActor(c *gin.Context) (identity.Actor, bool) {
	value, exists := c.Get(ctxActorKey)
	if !exists {
		return identity.Actor{}, false
	}

	actor, ok := value.(identity.Actor)
	return actor, ok
}
