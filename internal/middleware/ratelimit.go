package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/mochizou/placenews/internal/logger"
)

// visitor tracks the token bucket for a single client IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitConfig defines the config for the rate limit middleware
type RateLimitConfig struct {
	// Skip defines a function to skip middleware.
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// RPS is the sustained request rate allowed per client IP.
	RPS float64

	// Burst is the burst size allowed per client IP.
	Burst int

	// TTL is how long an idle client entry survives before cleanup.
	// Optional. Default: 5 minutes
	TTL time.Duration
}

// DefaultRateLimitConfig is the default config
var DefaultRateLimitConfig = RateLimitConfig{
	RPS:   2,
	Burst: 5,
	TTL:   5 * time.Minute,
}

// RateLimit throttles each client IP with a token bucket. Idle entries
// are dropped in the background so the visitor map cannot grow without
// bound.
func RateLimit(config ...RateLimitConfig) fiber.Handler {
	// Set default config
	cfg := DefaultRateLimitConfig

	// Override config if provided
	if len(config) > 0 {
		cfg = config[0]

		if cfg.RPS <= 0 {
			cfg.RPS = DefaultRateLimitConfig.RPS
		}
		if cfg.Burst <= 0 {
			cfg.Burst = DefaultRateLimitConfig.Burst
		}
		if cfg.TTL <= 0 {
			cfg.TTL = DefaultRateLimitConfig.TTL
		}
	}

	var (
		mu       sync.Mutex
		visitors = make(map[string]*visitor)
	)

	// Remove inactive clients every minute
	go func() {
		for {
			time.Sleep(time.Minute)

			mu.Lock()
			for ip, v := range visitors {
				if time.Since(v.lastSeen) > cfg.TTL {
					delete(visitors, ip)
				}
			}
			mu.Unlock()
		}
	}()

	// Return new handler
	return func(c *fiber.Ctx) error {
		// Skip middleware if Next returns true
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		ip := c.IP()

		mu.Lock()
		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)}
			visitors[ip] = v
		}
		v.lastSeen = time.Now()
		mu.Unlock()

		if !v.limiter.Allow() {
			logger.Get().Warn().
				Str("ip", ip).
				Str("path", c.Path()).
				Msg("rate limit exceeded")

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests",
			})
		}

		return c.Next()
	}
}
