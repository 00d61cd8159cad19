package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"kurumaya-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware applies a per-client token bucket to every route.
func RateLimitMiddleware(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := rateLimitClientID(c)
		endpoint := fmt.Sprintf("%s:%s", c.Request.Method, c.FullPath())

		allowed, retryAfter := limiter.Allow(clientID, endpoint)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      "Rate limit exceeded",
				"retryAfter": int(retryAfter.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateLimitClientID prefers the authenticated user, falling back to the
// client IP for anonymous requests.
func rateLimitClientID(c *gin.Context) string {
	if userID, ok := c.Get("user_id"); ok {
		if uid, ok := userID.(string); ok && uid != "" {
			return "user:" + uid
		}
	}
	return "anon:" + c.ClientIP()
}
