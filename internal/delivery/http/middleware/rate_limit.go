package middleware

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"neurodek-backend/pkg/apperror"
	"neurodek-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
}

// ContactRateLimitConfig limits contact form submissions per client IP
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:contact:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

// RateLimiter counts requests in fixed windows. Redis is used when a client
// is given; on redis errors (or without one) an in-process map is used,
// failing open.
type RateLimiter struct {
	config RateLimitConfig
	redis  *goredis.Client
	now    func() time.Time

	mu        sync.Mutex
	entries   map[string]*rateLimitEntry
	nextSweep time.Time
}

func NewRateLimiter(config RateLimitConfig, redisClient *goredis.Client) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	return &RateLimiter{
		config:  config,
		redis:   redisClient,
		now:     time.Now,
		entries: make(map[string]*rateLimitEntry),
	}
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.config.Limit <= 0 {
			c.Next()
			return
		}

		key := rl.config.KeyPrefix + rl.config.KeyFunc(c)
		count, resetAt := rl.hit(c.Request.Context(), key)

		remaining := rl.config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > rl.config.Limit {
			retryAfter := int(resetAt.Sub(rl.now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Warn(c.Request.Context(), "Rate limit exceeded",
				zap.String("client_ip", c.ClientIP()),
				zap.String("path", c.FullPath()),
			)
			c.Error(apperror.TooManyRequests("Rate limit exceeded. Please try again later."))
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) hit(ctx context.Context, key string) (int, time.Time) {
	if rl.redis != nil {
		count, resetAt, err := rl.hitRedis(ctx, key)
		if err == nil {
			return count, resetAt
		}
		logger.Warn(ctx, "Rate limit redis error, using in-memory fallback", zap.Error(err))
	}
	return rl.hitInMemory(key)
}

func (rl *RateLimiter) hitRedis(ctx context.Context, key string) (int, time.Time, error) {
	ttlSeconds := int(rl.config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := rl.redis.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), rl.now().Add(time.Duration(ttl) * time.Second), nil
}

func (rl *RateLimiter) hitInMemory(key string) (int, time.Time) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.After(rl.nextSweep) {
		for k, e := range rl.entries {
			if now.After(e.resetAt) {
				delete(rl.entries, k)
			}
		}
		rl.nextSweep = now.Add(rl.config.Window)
	}

	entry, ok := rl.entries[key]
	if !ok || now.After(entry.resetAt) {
		entry = &rateLimitEntry{resetAt: now.Add(rl.config.Window)}
		rl.entries[key] = entry
	}
	entry.count++

	return entry.count, entry.resetAt
}
