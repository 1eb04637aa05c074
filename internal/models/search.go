package models

import "strings"

// Display row bounds. DefaultRows matches the page's slider default;
// the validate tags below carry the same bounds as literals.
const (
	MinRows     = 10
	MaxRows     = 50
	DefaultRows = 20
)

// SearchRequest carries the two user inputs of one search action. It is
// created per action, validated, and discarded once the response has
// been rendered.
type SearchRequest struct {
	Place string `query:"place" json:"place" validate:"required"`
	Rows  int    `query:"rows" json:"rows" validate:"min=10,max=50"`
}

// Normalize trims the place name and fills in the default row count.
// Validation runs after this, so a whitespace-only place still fails
// the required check and never reaches the query builder.
func (r *SearchRequest) Normalize() {
	r.Place = strings.TrimSpace(r.Place)
	if r.Rows == 0 {
		r.Rows = DefaultRows
	}
}
