package dto

import "time"

// FeedItem is one normalized item pulled from a feed source before
// enrichment and persistence.
type FeedItem struct {
	Title       string
	Link        string
	Content     string
	PublishedAt *time.Time
}

// FeedPollResult is the per-source outcome of one polling run.
type FeedPollResult struct {
	Status      string   `json:"status"`
	SourceName  string   `json:"source_name"`
	SourceURL   string   `json:"source_url"`
	Ingested    int      `json:"ingested"`
	FailedLinks []string `json:"failed_links"`
	Errors      []string `json:"errors"`
}
