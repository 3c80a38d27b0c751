package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/iuran-warga/backend/internal/domain/error"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultLoginLimit is the number of login attempts allowed per window.
	defaultLoginLimit = 10
	// defaultLoginWindow is the rate limiting window for login attempts.
	defaultLoginWindow = time.Minute
)

// RateLimiter limits login attempts per client IP, backed by Redis so the
// counters survive restarts and are shared across instances.
type RateLimiter struct {
	client redis.UniversalClient
	limit  int
	window time.Duration
}

// NewRateLimiter creates a rate limiter with the default login limits.
func NewRateLimiter(client redis.UniversalClient) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  defaultLoginLimit,
		window: defaultLoginWindow,
	}
}

// NewRateLimiterWithConfig creates a rate limiter with explicit limits.
func NewRateLimiterWithConfig(client redis.UniversalClient, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Middleware returns a Gin handler enforcing the limit. When Redis is
// unreachable the request passes through: a broken limiter must not lock
// every resident out of the app.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:login:%s", c.ClientIP())
		ctx := c.Request.Context()

		count, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("Rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
				slog.Warn("Failed to set rate limit expiry", "error", err)
			}
		}

		if count > int64(rl.limit) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "too many login attempts, please try again later",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
