package feed

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// userAgent identifies us to the feed endpoint; the default Go client
// string tends to get served an empty or degraded feed.
const userAgent = "Mozilla/5.0 (compatible; placenews/1.0)"

type Fetcher struct {
	client *resty.Client
}

// NewFetcher builds the HTTP client for feed retrieval. One search is
// one best-effort request: no retries, no backoff, and no client-side
// timeout beyond whatever the transport defaults to.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: resty.New().
			SetHeader("User-Agent", userAgent).
			SetHeader("Accept", "application/rss+xml, application/xml;q=0.9, */*;q=0.8"),
	}
}

// Fetch retrieves the raw feed body at the given URL. Any transport
// error or non-200 status is returned to the caller; nothing is
// recovered here.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed from %s: %w", url, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode(), url)
	}

	return resp.Body(), nil
}
