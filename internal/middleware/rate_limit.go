package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		config: config,
	}
}

// NewRecipeCreationRateLimiter limits how fast one user can publish
// recipes.
func NewRecipeCreationRateLimiter(redisClient *redis.Client) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Hour,
		Limit:     5,
		KeyPrefix: "rate_limit:recipe_creation",
	})
}

// windowStart returns the start of the fixed window containing now.
func (c RateLimitConfig) windowStart(now time.Time) time.Time {
	return now.Truncate(c.Window)
}

// key returns the Redis counter key for a user's current window.
func (c RateLimitConfig) key(userID string, now time.Time) string {
	return fmt.Sprintf("%s:%s:%d", c.KeyPrefix, userID, c.windowStart(now).Unix())
}

// remaining clamps the requests left after count have been used.
func (c RateLimitConfig) remaining(count int) int {
	if r := c.Limit - count; r > 0 {
		return r
	}
	return 0
}

// Middleware returns a Gin middleware that enforces the limit per
// authenticated user. Redis failures do not fail the request.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), fmt.Sprintf("%v", userID))
		if err != nil {
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("You have exceeded the rate limit of %d requests per %v", rl.config.Limit, rl.config.Window),
				"retry_after": int(time.Until(resetTime).Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// IsAllowed checks if a request from the given user is allowed
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, userID string) (bool, int, time.Time, error) {
	now := time.Now()
	key := rl.config.key(userID, now)

	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incrCmd.Val())
	resetTime := rl.config.windowStart(now).Add(rl.config.Window)
	return count <= rl.config.Limit, rl.config.remaining(count), resetTime, nil
}

// Remaining returns the number of requests a user has left in the current
// window without consuming one.
func (rl *RateLimiter) Remaining(ctx context.Context, userID string) (int, time.Time, error) {
	now := time.Now()
	resetTime := rl.config.windowStart(now).Add(rl.config.Window)

	count, err := rl.redis.Get(ctx, rl.config.key(userID, now)).Int()
	if err == redis.Nil {
		return rl.config.Limit, resetTime, nil
	}
	if err != nil {
		return 0, time.Time{}, err
	}

	return rl.config.remaining(count), resetTime, nil
}

// StatusHandler reports the caller's remaining creations in the current
// window without consuming one.
func (rl *RateLimiter) StatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}

		remaining, resetTime, err := rl.Remaining(c.Request.Context(), fmt.Sprintf("%v", userID))
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "rate limit status unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"limit":     rl.config.Limit,
			"remaining": remaining,
			"reset":     resetTime.Unix(),
		})
	}
}
