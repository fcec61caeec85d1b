// internal/middleware/rate_limit.go
package middleware

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"

	"principal-lookup/internal/config"
	"principal-lookup/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RateLimiterMiddleware is a per-client-IP sliding window limiter backed by
// a redis sorted set. Lookups hit the database twice per call, so the window
// is enforced before a request reaches the service.
type RateLimiterMiddleware struct {
	RedisClient *redis.Client
	KeyPrefix   string
	Logger      logger.Logger
}

func NewRateLimiterMiddleware(
	redisClient *redis.Client,
	cfg *config.Config,
	logger logger.Logger,
) *RateLimiterMiddleware {
	keyPrefix := "cache:" + cfg.App.Name + ":mid:rl"
	return &RateLimiterMiddleware{
		RedisClient: redisClient,
		KeyPrefix:   keyPrefix,
		Logger:      logger,
	}
}

// Handle allows at most limit requests per client IP within the window.
// The whole check runs as one Lua script so the trim, count and insert are
// atomic.
func (rl *RateLimiterMiddleware) Handle(limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", rl.KeyPrefix, c.ClientIP())
		now := time.Now().UnixMilli()
		windowStart := now - window.Milliseconds()
		ttlSeconds := int64(math.Ceil(window.Seconds()))

		script := `
        local key = KEYS[1]
        local now = tonumber(ARGV[1])
        local window_start = tonumber(ARGV[2])
        local limit = tonumber(ARGV[3])
        local window_ttl = tonumber(ARGV[4])
        local member = ARGV[5]

        redis.call('ZREMRANGEBYSCORE', key, 0, window_start)

        local count = redis.call('ZCARD', key)

        if count >= limit then
            return 0
        end

        redis.call('ZADD', key, now, member)
        redis.call('EXPIRE', key, window_ttl)
        return 1
        `

		member := fmt.Sprintf("%d:%d", now, rand.Intn(10000))

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		res, err := rl.RedisClient.Eval(ctx, script, []string{key},
			now, windowStart, limit, ttlSeconds, member).Result()

		if err != nil {
			rl.Logger.Error("redis rate limiter error",
				zap.String("key", key),
				zap.Int64("limit", limit),
				zap.Duration("window", window),
				zap.Error(err))

			// fail-open: a broken limiter must not take the lookup path down
			c.Next()
			return
		}

		if result, ok := res.(int64); !ok || result == 0 {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests",
			})
			return
		}

		c.Next()
	}
}
