package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// KeyFunc picks one dimension a request is counted under. An empty key skips it.
type KeyFunc func(c *gin.Context) string

// ByClientIP counts requests per client address.
func ByClientIP(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// ByJSONField counts requests per value of a top-level string field of the JSON
// body, case-insensitively. The body is put back for the handler.
func ByJSONField(field string) KeyFunc {
	return func(c *gin.Context) string {
		if c.Request.Body == nil {
			return ""
		}
		body, err := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		if err != nil {
			return ""
		}

		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			return ""
		}
		value, _ := payload[field].(string)
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			return ""
		}
		return field + ":" + value
	}
}

// WindowCounter counts hits per key inside a fixed window.
type WindowCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

type redisCounter struct {
	client *redis.Client
}

func (r redisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// Окно начинается с первого запроса
	if count == 1 {
		r.client.Expire(ctx, key, window)
	}
	return count, nil
}

func (r redisCounter) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

// RateLimiter throttles the auth endpoints. Counters live in Redis, so every
// instance sees the same windows.
type RateLimiter struct {
	counter WindowCounter
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{counter: redisCounter{client: client}}
}

// Limit allows limit requests per window for each key the request maps to,
// rejecting it as soon as one of them is exhausted. Without keys the client IP is used.
func (rl *RateLimiter) Limit(scope string, limit int, window time.Duration, keys ...KeyFunc) gin.HandlerFunc {
	if len(keys) == 0 {
		keys = []KeyFunc{ByClientIP}
	}

	return func(c *gin.Context) {
		for _, keyFn := range keys {
			k := keyFn(c)
			if k == "" {
				continue
			}
			key := fmt.Sprintf("rate_limit:%s:%s", scope, k)

			count, err := rl.counter.Hit(c, key, window)
			if err != nil {
				// Redis недоступен: не блокируем вход
				continue
			}
			if count <= int64(limit) {
				continue
			}

			ttl, err := rl.counter.TTL(c, key)
			if err != nil || ttl <= 0 {
				ttl = window
			}
			seconds := int(ttl.Round(time.Second).Seconds())
			c.Header("Retry-After", fmt.Sprint(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"retry_after": seconds,
			})
			return
		}
		c.Next()
	}
}
