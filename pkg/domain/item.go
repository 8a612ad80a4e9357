package domain

import "time"

// FeedRecord is a single normalized item ingested from a feed.
// Title and Source are always set, possibly to the empty string.
// Published is nil when the source provided neither a published
// nor an updated timestamp; when set it is normalized to UTC.
type FeedRecord struct {
	Title     string
	Link      string
	Summary   string
	Published *time.Time
	Source    string
	Score     float64 // attached by the curator after ingestion
}

// PublishedOrEpoch returns the published time, or the Unix epoch when
// the record carries no timestamp. Used for sorting only; the age
// filter treats undated records differently.
func (r *FeedRecord) PublishedOrEpoch() time.Time {
	if r.Published == nil {
		return time.Unix(0, 0).UTC()
	}
	return *r.Published
}

// SelectedItem is a FeedRecord reduced to what the summarizer needs.
type SelectedItem struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// ArticleSummary is the result of summarizing one selected item.
// Bullets always holds exactly three entries.
type ArticleSummary struct {
	Title   string
	URL     string
	Bullets []string
}

// AggregateSummary is the result of summarizing a batch of selected items.
type AggregateSummary struct {
	Date          string
	Highlights    []string
	Risks         []string
	Opportunities []string
}
