package middleware

import (
	"sync"
	"time"

	"pharmacy-admin-service/internal/error/response"
	"pharmacy-admin-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Limit types
const (
	LimitByIP       = "ip"
	LimitByCombined = "combined"
)

// RateLimiterConfig configures a token bucket per key
type RateLimiterConfig struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket size
	ExpiryTime time.Duration // idle limiters older than this are dropped
	LimitType  string        // ip, or ip and route
}

// DefaultRateLimiterConfig default limiter settings
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       1,
	Burst:      5,
	ExpiryTime: 1 * time.Hour,
	LimitType:  LimitByIP,
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter holds one token bucket per key.
type KeyedLimiter struct {
	cfg      RateLimiterConfig
	mu       sync.Mutex
	limiters map[string]*limiterEntry
}

// NewKeyedLimiter creates a limiter set, filling unset fields from the defaults
func NewKeyedLimiter(cfg RateLimiterConfig) *KeyedLimiter {
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.ExpiryTime <= 0 {
		cfg.ExpiryTime = DefaultRateLimiterConfig.ExpiryTime
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}
	return &KeyedLimiter{
		cfg:      cfg,
		limiters: make(map[string]*limiterEntry),
	}
}

// Allow takes a token from the bucket of key
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(l.cfg.Rate), l.cfg.Burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	l.mu.Unlock()

	return entry.limiter.Allow()
}

// Cleanup drops limiters idle for longer than ExpiryTime and returns how many were removed
func (l *KeyedLimiter) Cleanup() int {
	cutoff := time.Now().Add(-l.cfg.ExpiryTime)

	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, entry := range l.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// Size returns the number of tracked keys
func (l *KeyedLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *KeyedLimiter) key(c *gin.Context) string {
	if l.cfg.LimitType == LimitByCombined {
		return c.ClientIP() + ":" + c.FullPath()
	}
	return c.ClientIP()
}

// Middleware rejects requests over the limit with 429
func (l *KeyedLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.key(c)
		if !l.Allow(key) {
			logger.Warning("rate limit exceeded for %s on %s", key, c.Request.URL.Path)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
