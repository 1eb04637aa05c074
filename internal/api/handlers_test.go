package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochizou/placenews/internal/config"
	"github.com/mochizou/placenews/internal/middleware"
	"github.com/mochizou/placenews/internal/models"
)

// RetrieverMock records the request URLs it was asked for and delegates
// to RetrieveFunc.
type RetrieverMock struct {
	RetrieveFunc func(ctx context.Context, url string) ([]models.Article, error)
	calls        []string
}

func (m *RetrieverMock) Retrieve(ctx context.Context, url string) ([]models.Article, error) {
	m.calls = append(m.calls, url)
	return m.RetrieveFunc(ctx, url)
}

func newTestApp(retriever Retriever) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	h := &Handlers{config: &config.Config{}, retriever: retriever}

	api := app.Group("/api/v1")
	api.Get("/health", h.HealthCheck)
	api.Get("/search", middleware.ValidateSearch(), h.Search)

	return app
}

func makeArticles(n int) []models.Article {
	articles := make([]models.Article, 0, n)
	for i := 0; i < n; i++ {
		articles = append(articles, models.Article{
			Title: "記事" + strings.Repeat("!", i),
			Link:  "https://news.google.com/rss/articles/" + strings.Repeat("A", i+1),
		})
	}
	return articles
}

func TestHandlers_Search(t *testing.T) {
	mock := &RetrieverMock{
		RetrieveFunc: func(ctx context.Context, url string) ([]models.Article, error) {
			return makeArticles(15), nil
		},
	}
	app := newTestApp(mock)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/api/v1/search?place=%E6%B8%8B%E8%B0%B7%E9%A7%85&rows=10", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "渋谷駅", body.Place)
	assert.Equal(t, 10, body.Count)
	require.Len(t, body.Articles, 10)
	assert.Equal(t, "記事", body.Articles[0].Title)

	assert.True(t, strings.HasPrefix(body.Query, "(渋谷駅) AND ("))
	assert.Contains(t, body.Query, "イベント OR 開催")

	require.Len(t, mock.calls, 1)
	assert.True(t, strings.HasPrefix(mock.calls[0],
		"https://news.google.com/rss/search?q=after:"))
	assert.Contains(t, mock.calls[0], "%E6%B8%8B%E8%B0%B7%E9%A7%85")
	assert.True(t, strings.HasSuffix(mock.calls[0], "&hl=ja&gl=JP&ceid=JP:ja"))
	assert.Equal(t, mock.calls[0], body.RequestURL)
}

func TestHandlers_SearchDefaultRows(t *testing.T) {
	mock := &RetrieverMock{
		RetrieveFunc: func(ctx context.Context, url string) ([]models.Article, error) {
			return makeArticles(30), nil
		},
	}
	app := newTestApp(mock)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/api/v1/search?place=%E6%9D%B1%E4%BA%AC%E9%A7%85", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, models.DefaultRows, body.Count)
	assert.Len(t, body.Articles, models.DefaultRows)
}

func TestHandlers_SearchFewerThanRows(t *testing.T) {
	mock := &RetrieverMock{
		RetrieveFunc: func(ctx context.Context, url string) ([]models.Article, error) {
			return makeArticles(3), nil
		},
	}
	app := newTestApp(mock)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/api/v1/search?place=%E6%B8%8B%E8%B0%B7%E9%A7%85&rows=50", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Count)
	assert.Len(t, body.Articles, 3)
}

func TestHandlers_SearchNoResults(t *testing.T) {
	mock := &RetrieverMock{
		RetrieveFunc: func(ctx context.Context, url string) ([]models.Article, error) {
			return []models.Article{}, nil
		},
	}
	app := newTestApp(mock)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/api/v1/search?place=%E3%81%A9%E3%81%93%E3%81%8B", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"count":0`)
	assert.Contains(t, string(raw), `"articles":[]`)
}

func TestHandlers_SearchUpstreamError(t *testing.T) {
	mock := &RetrieverMock{
		RetrieveFunc: func(ctx context.Context, url string) ([]models.Article, error) {
			return nil, errors.New("retrieve feed: unexpected status code 503")
		},
	}
	app := newTestApp(mock)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/api/v1/search?place=%E6%B8%8B%E8%B0%B7%E9%A7%85", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Failed to retrieve feed", body["error"])
	assert.Contains(t, body["request_url"], "news.google.com/rss/search")
}

func TestHandlers_SearchRejectedBeforeRetrieve(t *testing.T) {
	mock := &RetrieverMock{
		RetrieveFunc: func(ctx context.Context, url string) ([]models.Article, error) {
			return makeArticles(1), nil
		},
	}
	app := newTestApp(mock)

	for _, target := range []string{
		"/api/v1/search",
		"/api/v1/search?place=%20",
		"/api/v1/search?place=%E6%B8%8B%E8%B0%B7%E9%A7%85&rows=9",
		"/api/v1/search?place=%E6%B8%8B%E8%B0%B7%E9%A7%85&rows=51",
	} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, target)
	}

	assert.Empty(t, mock.calls, "retriever must not be called for rejected requests")
}

func TestHandlers_HealthCheck(t *testing.T) {
	app := newTestApp(&RetrieverMock{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.NotEmpty(t, body["time"])
}
