// Package query builds the boolean search expression and the Google
// News RSS request URL for one search action. Everything here is pure
// string construction; no network calls happen in this package.
package query

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mochizou/placenews/internal/jst"
)

// EventTerms is the fixed disjunction of event-related keywords that is
// ANDed with every place name. It is deliberately hardcoded and not
// user-configurable.
const EventTerms = "イベント OR 開催 OR オープン OR 祭り OR 体験会 OR フェス OR 展示会 OR 展"

const (
	feedBaseURL  = "https://news.google.com/rss/search"
	localeParams = "hl=ja&gl=JP&ceid=JP:ja"
)

// Query is the fully derived request for one search: the boolean
// expression, the two-day date window around today, and the final
// request URL. It is a pure function of the place name and the JST
// calendar; it carries no identity of its own.
type Query struct {
	Expression string
	DateFrom   string
	DateTo     string
	URL        string
}

// BuildExpression combines a place name with the fixed event-keyword
// disjunction: "(<place>) AND (<EventTerms>)".
func BuildExpression(place string) string {
	return fmt.Sprintf("(%s) AND (%s)", strings.TrimSpace(place), EventTerms)
}

// BuildURL assembles the feed request URL for an expression and a date
// window. Dates are date-only (YYYY-MM-DD) and are embedded next to the
// URL-encoded expression; the locale parameters pin the feed to the
// Japanese edition.
func BuildURL(expr, dateFrom, dateTo string) string {
	q := fmt.Sprintf("after:%s+before:%s+%s", dateFrom, dateTo, url.QueryEscape(expr))
	return fmt.Sprintf("%s?q=%s&%s", feedBaseURL, q, localeParams)
}

// Build derives the complete Query for a place. The window is always
// yesterday through tomorrow in JST, recomputed on every call so that a
// session running across midnight never reuses a stale window.
func Build(place string) Query {
	dateFrom := jst.DaysAgo(1)
	dateTo := jst.DaysAgo(-1)
	expr := BuildExpression(place)

	return Query{
		Expression: expr,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		URL:        BuildURL(expr, dateFrom, dateTo),
	}
}
