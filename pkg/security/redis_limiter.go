package security

import (
	"context"
	"net/http"
	"time"

	"team_goal_tracker/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const rateLimitKeyPrefix = "team_tracker:ratelimit:"

// RedisRateLimiter 基于Redis INCR+EXPIRE的按IP限流，
// 多实例部署时共享计数窗口；Redis不可用时放行并记录错误
func RedisRateLimiter(client *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxRequests <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 250*time.Millisecond)
		defer cancel()

		key := rateLimitKeyPrefix + c.ClientIP()
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			logger.Log.Error("Redis rate limiter error", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				logger.Log.Error("Redis rate limiter expire error", zap.Error(err))
			}
		}

		if int(count) > maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
