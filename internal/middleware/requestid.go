package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey is the Locals key under which the request ID is stored.
const RequestIDKey = "requestID"

// requestIDHeader carries the ID on both the request and the response.
const requestIDHeader = "X-Request-ID"

// RequestIDConfig defines the config for the request ID middleware
type RequestIDConfig struct {
	// Skip defines a function to skip middleware.
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Generator creates new request IDs.
	// Optional. Default: uuid.NewString
	Generator func() string
}

// DefaultRequestIDConfig is the default config
var DefaultRequestIDConfig = RequestIDConfig{
	Next:      nil,
	Generator: uuid.NewString,
}

// RequestID tags every request with an ID, honoring one already
// supplied by the caller, and echoes it on the response.
func RequestID(config ...RequestIDConfig) fiber.Handler {
	// Set default config
	cfg := DefaultRequestIDConfig

	// Override config if provided
	if len(config) > 0 {
		cfg = config[0]

		if cfg.Next == nil {
			cfg.Next = DefaultRequestIDConfig.Next
		}
		if cfg.Generator == nil {
			cfg.Generator = DefaultRequestIDConfig.Generator
		}
	}

	// Return new handler
	return func(c *fiber.Ctx) error {
		// Skip middleware if Next returns true
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		id := c.Get(requestIDHeader)
		if id == "" {
			id = cfg.Generator()
		}

		c.Locals(RequestIDKey, id)
		c.Set(requestIDHeader, id)

		return c.Next()
	}
}
