package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/mochizou/placenews/internal/config"
	"github.com/mochizou/placenews/internal/feed"
	"github.com/mochizou/placenews/internal/logger"
	"github.com/mochizou/placenews/internal/middleware"
	"github.com/mochizou/placenews/internal/models"
	"github.com/mochizou/placenews/internal/query"
)

// Retriever fetches the article rows behind a feed request URL.
type Retriever interface {
	Retrieve(ctx context.Context, url string) ([]models.Article, error)
}

type Handlers struct {
	config    *config.Config
	retriever Retriever
}

func NewHandlers(cfg *config.Config) *Handlers {
	return &Handlers{
		config:    cfg,
		retriever: feed.NewProcessor(),
	}
}

// HealthCheck handles the /health endpoint
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Search handles GET /api/v1/search. The validation middleware has
// already normalized the request; this builds the dated query, runs
// one feed retrieval and trims the result to the requested rows.
func (h *Handlers) Search(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.SearchRequestKey).(models.SearchRequest)
	if !ok {
		return fiber.ErrInternalServerError
	}

	q := query.Build(req.Place)

	articles, err := h.retriever.Retrieve(c.Context(), q.URL)
	if err != nil {
		logger.Get().Error().
			Err(err).
			Str("place", req.Place).
			Str("url", q.URL).
			Msg("search failed")

		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":       "Failed to retrieve feed",
			"request_url": q.URL,
		})
	}

	articles = lo.Slice(articles, 0, req.Rows)

	return c.JSON(models.SearchResponse{
		Place:      req.Place,
		Query:      q.Expression,
		RequestURL: q.URL,
		Count:      len(articles),
		Articles:   articles,
	})
}
