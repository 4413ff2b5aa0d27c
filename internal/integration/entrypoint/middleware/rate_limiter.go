// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/finlog/backend/internal/domain/error"
	"github.com/finlog/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimiter provides IP-based fixed-window rate limiting backed by Redis,
// so the limit holds across multiple API instances. Redis being unreachable
// fails open: login availability wins over throttling.
type RateLimiter struct {
	client         *redis.Client
	keyPrefix      string
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return NewRateLimiterWithConfig(client, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		keyPrefix:      "ratelimit:login:",
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c, clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow checks whether a request from the given key should pass. The counter
// key expires with the window, so windows reset without any cleanup job.
func (rl *RateLimiter) allow(c *gin.Context, key string) bool {
	ctx := c.Request.Context()
	redisKey := rl.keyPrefix + key

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Error("Rate limiter unavailable, allowing request", "error", err)
		return true
	}

	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			slog.Error("Failed to set rate limit window", "error", err)
		}
	}

	return count <= int64(rl.maxAttempts)
}

// Reset clears the rate limiter state for a single client (useful for testing).
func (rl *RateLimiter) Reset(ctx context.Context, key string) error {
	if err := rl.client.Del(ctx, rl.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}
