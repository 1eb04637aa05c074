package feed

import (
	"bytes"
	"fmt"

	"github.com/mmcdole/gofeed/rss"

	"github.com/mochizou/placenews/internal/jst"
	"github.com/mochizou/placenews/internal/models"
)

// DefaultLimit caps how many feed entries are considered per search
// before deduplication. The display row count trims further downstream.
const DefaultLimit = 50

// Normalizer turns a raw RSS body into the tabular article set. The
// feed-format handling itself is delegated to gofeed's RSS parser; this
// type only decides which entries survive and what lands in each row.
type Normalizer struct {
	parser *rss.Parser
}

func NewNormalizer() *Normalizer {
	return &Normalizer{parser: &rss.Parser{}}
}

// Tabulate parses the body and emits at most one article per unique
// link, preserving feed order. Only the first `limit` entries are
// considered. A body that cannot be parsed at all is an error for the
// caller; a single entry with a missing timestamp or a malformed source
// descriptor is absorbed here and the entry kept with empty fields.
func (n *Normalizer) Tabulate(body []byte, limit int) ([]models.Article, error) {
	parsed, err := n.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := parsed.Items
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		items = items[:limit]
	}

	seen := make(map[string]struct{}, len(items))
	articles := make([]models.Article, 0, len(items))

	for _, item := range items {
		// The link is the dedup key: drop entries without one and keep
		// only the first occurrence of each (exact string match).
		link := item.Link
		if link == "" {
			continue
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}

		var source string
		if item.Source != nil {
			source = item.Source.Title
		}

		articles = append(articles, models.Article{
			Title:       item.Title,
			Source:      source,
			PublishedAt: jst.Format(item.PubDateParsed),
			Link:        link,
		})
	}

	return articles, nil
}
