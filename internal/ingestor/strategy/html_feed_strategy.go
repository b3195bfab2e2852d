package strategy

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/dto"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/utils"

	"github.com/PuerkitoBio/goquery"
)

const defaultItemSelector = "main a, article a"

// HTMLFeedStrategy scrapes publication listing pages of authorities that
// offer no machine-readable feed.
type HTMLFeedStrategy struct {
	logger *logger.Logger
	client *http.Client
}

// NewHTMLFeedStrategy creates a new instance of HTMLFeedStrategy.
func NewHTMLFeedStrategy(log *logger.Logger) *HTMLFeedStrategy {
	return &HTMLFeedStrategy{
		logger: log,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetKind returns the feed kind this strategy handles.
func (s *HTMLFeedStrategy) GetKind() entity.FeedKind {
	return entity.FeedKindHTML
}

// Parse fetches the listing page, extracts publication links with the
// source's CSS selector and pulls the readable text of each linked page.
// Listing pages carry no reliable publication dates, so PublishedAt is left
// unset and the caller stamps fetch time instead.
func (s *HTMLFeedStrategy) Parse(ctx context.Context, source *entity.FeedSource) ([]dto.FeedItem, error) {
	body, err := fetchPage(ctx, s.client, source.URL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(source.URL)
	if err != nil {
		return nil, err
	}

	selector := source.ItemSelector
	if selector == "" {
		selector = defaultItemSelector
	}

	seen := make(map[string]bool)
	var items []dto.FeedItem

	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !utils.ShouldContinue(ctx, s.logger) {
			return false
		}

		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		title := strings.TrimSpace(sel.Text())
		if title == "" {
			return true
		}

		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		link := baseURL.ResolveReference(ref).String()
		if seen[link] {
			return true
		}
		seen[link] = true

		articleBody, err := fetchPage(ctx, s.client, link)
		if err != nil {
			s.logger.Warn("Failed to fetch publication page",
				logger.StringField("link", link), logger.ErrorField(err))
			return true
		}
		content, err := extractReadableText(articleBody)
		if err != nil {
			s.logger.Warn("Failed to extract publication text",
				logger.StringField("link", link), logger.ErrorField(err))
			return true
		}

		items = append(items, dto.FeedItem{
			Title:   utils.CleanToValidUTF8(title),
			Link:    link,
			Content: content,
		})
		return true
	})

	return items, nil
}
