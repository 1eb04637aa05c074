package models

// Article is one normalized feed entry. Instances are immutable once
// built; the link doubles as the uniqueness key within a result set.
type Article struct {
	Title string `json:"title"`
	// Source is the publishing outlet taken from the feed's nested
	// source descriptor; empty when the feed omits it.
	Source string `json:"source,omitempty"`
	// PublishedAt is the entry's published time already formatted as
	// "YYYY-MM-DD HH:MM" in JST. Empty means the feed carried no
	// parseable timestamp for this entry.
	PublishedAt string `json:"published_jst,omitempty"`
	Link        string `json:"link"`
}

// SearchResponse is what the presentation layer receives for one search
// action: the trimmed row set plus the exact expression and request URL
// that produced it, surfaced for display and debugging.
type SearchResponse struct {
	Place      string    `json:"place"`
	Query      string    `json:"query"`
	RequestURL string    `json:"request_url"`
	Count      int       `json:"count"`
	Articles   []Article `json:"articles"`
}
