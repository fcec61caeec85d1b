// internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"principal-lookup/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// AuthMiddleware gates the lookup endpoints behind a bearer token that must
// be present in redis. Tokens are provisioned out of band; this service never
// issues them.
type AuthMiddleware struct {
	redisClient *redis.Client
	keyPrefix   string
}

func NewAuthMiddleware(redisClient *redis.Client, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		redisClient: redisClient,
		keyPrefix:   "cache:" + cfg.App.Name + ":api_token:",
	}
}

func (m *AuthMiddleware) Handle() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		token = strings.TrimPrefix(token, "Bearer ")
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		exists, err := m.redisClient.Exists(ctx, m.keyPrefix+token).Result()
		if err != nil || exists == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx.Next()
	}
}
