package strategy

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/dto"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/utils"

	"github.com/mmcdole/gofeed"
)

// RSSFeedStrategy parses RSS and Atom feeds published by regulatory
// authorities.
type RSSFeedStrategy struct {
	logger *logger.Logger
	client *http.Client
}

// NewRSSFeedStrategy creates a new instance of RSSFeedStrategy.
func NewRSSFeedStrategy(log *logger.Logger) *RSSFeedStrategy {
	return &RSSFeedStrategy{
		logger: log,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetKind returns the feed kind this strategy handles.
func (s *RSSFeedStrategy) GetKind() entity.FeedKind {
	return entity.FeedKindRSS
}

// Parse fetches the feed and returns its items newest first. The article
// body of each item is fetched and reduced to readable text; items whose
// body cannot be fetched fall back to the feed's own description.
func (s *RSSFeedStrategy) Parse(ctx context.Context, source *entity.FeedSource) ([]dto.FeedItem, error) {
	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(feed.Items, func(i, j int) bool {
		if feed.Items[i].PublishedParsed == nil || feed.Items[j].PublishedParsed == nil {
			return false
		}
		return feed.Items[i].PublishedParsed.After(*feed.Items[j].PublishedParsed)
	})

	items := make([]dto.FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}

		content := item.Content
		if content == "" {
			content = item.Description
		}

		if item.Link != "" {
			body, err := fetchPage(ctx, s.client, item.Link)
			if err != nil {
				s.logger.Warn("Failed to fetch article body, using feed description",
					logger.StringField("link", item.Link), logger.ErrorField(err))
			} else if text, err := extractReadableText(body); err == nil && text != "" {
				content = text
			}
		}

		items = append(items, dto.FeedItem{
			Title:       utils.CleanToValidUTF8(item.Title),
			Link:        item.Link,
			Content:     utils.CleanToValidUTF8(content),
			PublishedAt: item.PublishedParsed,
		})
	}

	return items, nil
}
