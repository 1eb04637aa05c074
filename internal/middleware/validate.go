package middleware

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mochizou/placenews/internal/logger"
	"github.com/mochizou/placenews/internal/models"
)

// SearchRequestKey is the Locals key under which ValidateSearch stores
// the normalized request for the handler.
const SearchRequestKey = "searchRequest"

// Validator holds the validator instance shared by the validation
// middlewares.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate validates the given struct against its tags
func (v *Validator) Validate(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateSearch parses the search query parameters, normalizes them
// and rejects the request before it reaches the handler when the place
// is missing or the row count is out of range.
func ValidateSearch() fiber.Handler {
	v := NewValidator()

	return func(c *fiber.Ctx) error {
		var req models.SearchRequest
		if err := c.QueryParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid query parameters",
				"msg":   err.Error(),
			})
		}

		req.Normalize()

		if err := v.Validate(req); err != nil {
			fields := make(map[string]string)
			for _, err := range err.(validator.ValidationErrors) {
				fields[err.Field()] = err.Tag()
			}

			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": fields,
			})
		}

		// Store the normalized request in the context
		c.Locals(SearchRequestKey, req)

		return c.Next()
	}
}

// ErrorHandler renders every error that escapes a handler as a
// consistent JSON body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Default status code
	code := fiber.StatusInternalServerError

	// Check if it's a fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	logger.Get().Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", code).
		Msg("HTTP error")

	return c.Status(code).JSON(fiber.Map{
		"error": http.StatusText(code),
	})
}
