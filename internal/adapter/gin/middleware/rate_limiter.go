package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	grpcmiddleware "shop-service/internal/adapter/grpc/middleware"
)

// RateLimiter returns a Gin middleware backed by the shared token bucket
// limiter. Buckets are per method, path and client IP.
func RateLimiter(limiter *grpcmiddleware.RateLimiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Enabled() {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		key := fmt.Sprintf("%s:%s:%s", c.Request.Method, c.Request.URL.Path, clientIP)

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// Fail open.
			log.Warn("rate limiter redis error, allowing request",
				zap.String("client_ip", clientIP),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if !allowed {
			cfg := limiter.Config()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": fmt.Sprintf("Rate limit exceeded: %.2f requests/second (burst capacity: %d)", cfg.RequestsPerSecond, cfg.BurstCapacity),
			})
			return
		}

		c.Next()
	}
}
