package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/mochizou/placenews/internal/logger"
	"github.com/mochizou/placenews/internal/models"
)

// Processor runs one fetch-and-normalize pass over the feed at a
// request URL. It owns no state between calls.
type Processor struct {
	fetcher    *Fetcher
	normalizer *Normalizer
	limit      int
}

func NewProcessor() *Processor {
	return &Processor{
		fetcher:    NewFetcher(),
		normalizer: NewNormalizer(),
		limit:      DefaultLimit,
	}
}

// Retrieve fetches the feed at requestURL and returns the deduplicated
// article rows in feed order. Whole-fetch failures (network, non-200,
// unparseable body) are logged and returned to the caller; per-entry
// problems never surface here.
func (p *Processor) Retrieve(ctx context.Context, requestURL string) ([]models.Article, error) {
	log := logger.Get()
	start := time.Now()

	log.Debug().
		Str("url", requestURL).
		Msg("fetching feed")

	body, err := p.fetcher.Fetch(ctx, requestURL)
	if err != nil {
		log.Error().
			Err(err).
			Str("url", requestURL).
			Msg("feed fetch failed")
		return nil, fmt.Errorf("retrieve feed: %w", err)
	}

	articles, err := p.normalizer.Tabulate(body, p.limit)
	if err != nil {
		log.Error().
			Err(err).
			Str("url", requestURL).
			Int("bytes", len(body)).
			Msg("feed body could not be parsed")
		return nil, fmt.Errorf("retrieve feed: %w", err)
	}

	log.Info().
		Int("articles", len(articles)).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("feed retrieved")

	return articles, nil
}
