package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// unreachableRedis returns a client whose every command fails, without
// retrying.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:       "127.0.0.1:1",
		MaxRetries: -1,
	})
}

func TestRateLimitKeyArithmetic(t *testing.T) {
	cfg := RateLimitConfig{Window: time.Hour, Limit: 5, KeyPrefix: "rate_limit:recipe_creation"}
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Requests within one window share a counter key.
	early := cfg.key("user-1", base.Add(time.Minute))
	late := cfg.key("user-1", base.Add(59*time.Minute))
	assert.Equal(t, early, late)

	// The next window and other users get their own counters.
	assert.NotEqual(t, early, cfg.key("user-1", base.Add(61*time.Minute)))
	assert.NotEqual(t, early, cfg.key("user-2", base.Add(time.Minute)))
}

func TestRateLimitWindowStart(t *testing.T) {
	cfg := RateLimitConfig{Window: time.Hour, Limit: 5}
	now := time.Date(2026, 3, 1, 10, 17, 42, 0, time.UTC)

	start := cfg.windowStart(now)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), start)
	assert.True(t, start.Add(cfg.Window).After(now))
}

func TestRateLimitRemainingClamps(t *testing.T) {
	cfg := RateLimitConfig{Window: time.Hour, Limit: 5}

	assert.Equal(t, 5, cfg.remaining(0))
	assert.Equal(t, 1, cfg.remaining(4))
	assert.Equal(t, 0, cfg.remaining(5))
	assert.Equal(t, 0, cfg.remaining(7))
}

func TestRecipeCreationRateLimiterConfig(t *testing.T) {
	rl := NewRecipeCreationRateLimiter(nil)

	assert.Equal(t, 5, rl.config.Limit)
	assert.Equal(t, time.Hour, rl.config.Window)
}

func setupRateLimitRouter(rl *RateLimiter, withUser bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if withUser {
		router.Use(func(c *gin.Context) { c.Set("user_id", uuid.New()) })
	}
	router.POST("/recipes", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	router.GET("/recipes/limit", rl.StatusHandler())
	return router
}

func TestRateLimitMiddlewareFailsOpen(t *testing.T) {
	rl := NewRecipeCreationRateLimiter(unreachableRedis())
	router := setupRateLimitRouter(rl, true)

	// When the counter store is down the request goes through.
	req := httptest.NewRequest("POST", "/recipes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Error"))
}

func TestRateLimitMiddlewareRequiresUser(t *testing.T) {
	rl := NewRecipeCreationRateLimiter(unreachableRedis())
	router := setupRateLimitRouter(rl, false)

	req := httptest.NewRequest("POST", "/recipes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitStatusUnavailable(t *testing.T) {
	rl := NewRecipeCreationRateLimiter(unreachableRedis())
	router := setupRateLimitRouter(rl, true)

	req := httptest.NewRequest("GET", "/recipes/limit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
