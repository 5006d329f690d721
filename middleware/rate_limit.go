package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"wxwriter/internal/metrics"
	"wxwriter/model"
)

var rlCtx = context.Background()

// RateLimiter limits requests per client IP using Redis counters.
// 登录接口用它挡爆破；生成接口的当日限额在服务层按用户数。
func RateLimiter(rdb *redis.Client, name string, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}
		ip := c.ClientIP()
		key := fmt.Sprintf("wx:rl:%s:%s", name, ip)

		count, err := rdb.Incr(rlCtx, key).Result()
		if err != nil {
			// redis 故障时放行，不让限流器变成单点
			c.Next()
			return
		}
		if count == 1 {
			_ = rdb.Expire(rlCtx, key, window).Err()
		}
		if count > limit {
			metrics.IncRateLimit(name)
			c.Header("Retry-After", fmt.Sprintf("%.f", window.Seconds()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.Response{
				Success: false,
				Error:   "too many requests",
			})
			return
		}
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", limit-count))
		c.Next()
	}
}
