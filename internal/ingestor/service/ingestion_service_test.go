package service

import (
	"context"
	"testing"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/config"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/scoring"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestItemHashIsStableAndDistinguishesItems(t *testing.T) {
	published := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	a := dto.FeedItem{Link: "https://www.fca.org.uk/news/cp-26-1", PublishedAt: &published}
	b := dto.FeedItem{Link: "https://www.fca.org.uk/news/cp-26-2", PublishedAt: &published}

	assert.Equal(t, itemHash(a), itemHash(a))
	assert.NotEqual(t, itemHash(a), itemHash(b))

	// the same link republished at a different time is the same item, so the
	// hash dedup agrees with the url uniqueness guarantee on the table
	later := published.Add(time.Hour)
	c := dto.FeedItem{Link: a.Link, PublishedAt: &later}
	assert.Equal(t, itemHash(a), itemHash(c))

	// an item without a published date hashes the same way
	d := dto.FeedItem{Link: a.Link}
	assert.Equal(t, itemHash(a), itemHash(d))
}

func TestBuildUpdateMapsAnalysisFields(t *testing.T) {
	published := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	source := &entity.FeedSource{Authority: "FCA", Name: "FCA News"}
	item := dto.FeedItem{
		Title:       "New operational resilience rules",
		Link:        "https://www.fca.org.uk/news/ps-26-3",
		Content:     "All banks must review outsourcing arrangements.",
		PublishedAt: &published,
	}
	analysis := &dto.UpdateAnalysisResult{
		Summary:               "Banks must strengthen outsourcing oversight.",
		Urgency:               entity.UrgencyHigh,
		ImpactLevel:           entity.ImpactSignificant,
		BusinessImpactScore:   8.5,
		ConfidenceScore:       0.9,
		PrimarySector:         "Banking",
		ApplicableSectors:     []string{"Banking", "Payments"},
		ApplicableFirmTypes:   []string{"Bank"},
		SectorRelevanceScores: map[string]float64{"Banking": 85},
		MinimumFirmSize:       "medium",
		KeyDates:              []string{"1 October 2026", "1 January 2027"},
		ComplianceDeadline:    "2026-10-01",
	}

	update, err := buildUpdate(source, item, analysis)
	require.NoError(t, err)

	assert.Equal(t, "New operational resilience rules", update.Headline)
	assert.Equal(t, "FCA", update.Authority)
	assert.Equal(t, "Banking", update.Sector)
	assert.Equal(t, entity.UrgencyHigh, update.Urgency)
	assert.Equal(t, entity.FirmSize("medium"), update.MinimumFirmSize)
	assert.Equal(t, "UK", update.Jurisdiction)
	assert.Equal(t, "1 October 2026, 1 January 2027", update.KeyDates)
	assert.Equal(t, itemHash(item), update.HashIdentifier)
	assert.InDelta(t, 85.0, update.SectorScores()["Banking"], 0.0001)

	require.NotNil(t, update.ComplianceDeadline)
	assert.Equal(t, 2026, update.ComplianceDeadline.Year())
	assert.Equal(t, time.October, update.ComplianceDeadline.Month())
}

// A strongly sector-targeted analysis must carry an enriched update over the
// relevance cutoff on the sector contribution alone.
func TestBuildUpdateSectorScoresClearRelevanceCutoff(t *testing.T) {
	source := &entity.FeedSource{Authority: "FCA"}
	item := dto.FeedItem{Title: "Prudential rules for deposit takers", Link: "https://www.fca.org.uk/news/ps-26-9"}
	analysis := &dto.UpdateAnalysisResult{
		Summary:               "New prudential requirements.",
		PrimarySector:         "Banking",
		SectorRelevanceScores: map[string]float64{"Banking": 80},
	}

	update, err := buildUpdate(source, item, analysis)
	require.NoError(t, err)

	profile := &entity.FirmProfile{Sectors: []string{"Banking"}}
	relevance, factors := scoring.ScoreUpdate(profile, update)

	assert.Greater(t, relevance, scoring.RelevanceCutoff)
	assert.Contains(t, factors, "High relevance to Banking")
}

func TestBuildUpdateIgnoresUnparseableDeadline(t *testing.T) {
	source := &entity.FeedSource{Authority: "PRA"}
	item := dto.FeedItem{Title: "Speech", Link: "https://example.org/speech"}
	analysis := &dto.UpdateAnalysisResult{
		Summary:            "General remarks.",
		ComplianceDeadline: "Q4 2026",
	}

	update, err := buildUpdate(source, item, analysis)
	require.NoError(t, err)
	assert.Nil(t, update.ComplianceDeadline)
	assert.Nil(t, update.PublishedAt)
}

type stubFeedSourceRepo struct {
	sources []entity.FeedSource
	polls   []error
}

func (r *stubFeedSourceRepo) FindActive(ctx context.Context) ([]entity.FeedSource, error) {
	return r.sources, nil
}

func (r *stubFeedSourceRepo) RecordPoll(ctx context.Context, id uint, polledAt time.Time, pollErr error) error {
	r.polls = append(r.polls, pollErr)
	return nil
}

func TestPollAllNotifiesOnSourceFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.Ingestor.MaxConcurrentFeeds = 1
	cfg.Ingestor.MaxItemsPerFeed = 5

	feedRepo := &stubFeedSourceRepo{sources: []entity.FeedSource{
		{ID: 1, Name: "FCA News", URL: "https://www.fca.org.uk/news/rss.xml", Kind: entity.FeedKindRSS, Authority: "FCA"},
	}}
	notifier := &stubNotifier{}

	// no registered strategies, so every source fails to poll
	svc := NewIngestionService(cfg, nil, feedRepo, nil, nil, notifier, testLogger(), nil)

	svc.PollAll(context.Background())

	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "FCA News")
	assert.Contains(t, notifier.messages[0], "no parsing strategy")
	require.Len(t, feedRepo.polls, 1)
	assert.Error(t, feedRepo.polls[0])
}

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}
