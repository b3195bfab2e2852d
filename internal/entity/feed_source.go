package entity

import "time"

// FeedKind identifies how a feed source is fetched.
type FeedKind string

const (
	FeedKindRSS  FeedKind = "rss"
	FeedKindHTML FeedKind = "html"
)

// FeedSource is one regulatory authority publication feed polled by the
// ingestion service.
type FeedSource struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Authority    string     `gorm:"not null" json:"authority"`
	Name         string     `gorm:"not null" json:"name"`
	URL          string     `gorm:"unique;not null" json:"url"`
	Kind         FeedKind   `gorm:"not null" json:"kind"`
	ItemSelector string     `json:"item_selector"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastPolledAt *time.Time `json:"last_polled_at,omitempty"`
	LastError    string     `json:"last_error"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the FeedSource model.
func (FeedSource) TableName() string {
	return "feed_sources"
}
