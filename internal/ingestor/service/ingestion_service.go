package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/config"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/repository"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/strategy"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/common"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/telegram"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/utils"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
)

// IngestionService polls feed sources on a schedule, enriches new
// publications and publishes an event for each persisted update.
type IngestionService interface {
	Start(ctx context.Context) error
	Stop()
	PollAll(ctx context.Context)
}

// NewIngestionService creates a new IngestionService.
func NewIngestionService(
	cfg *config.Config,
	redisClient *redis.Client,
	feedSourceRepo repository.FeedSourceRepository,
	updateRepo repository.RegulatoryUpdateRepository,
	aiRepo repository.AIRepository,
	notifier telegram.Notifier,
	log *logger.Logger,
	strategies []strategy.FeedParsingStrategy,
) IngestionService {
	strategyMap := make(map[entity.FeedKind]strategy.FeedParsingStrategy)
	for _, s := range strategies {
		strategyMap[s.GetKind()] = s
	}

	return &ingestionService{
		cfg:            cfg,
		redisClient:    redisClient,
		feedSourceRepo: feedSourceRepo,
		updateRepo:     updateRepo,
		aiRepo:         aiRepo,
		notifier:       notifier,
		logger:         log,
		strategies:     strategyMap,
		cron:           cron.New(),
	}
}

type ingestionService struct {
	cfg            *config.Config
	redisClient    *redis.Client
	feedSourceRepo repository.FeedSourceRepository
	updateRepo     repository.RegulatoryUpdateRepository
	aiRepo         repository.AIRepository
	notifier       telegram.Notifier
	logger         *logger.Logger
	strategies     map[entity.FeedKind]strategy.FeedParsingStrategy
	cron           *cron.Cron
}

// Start registers the polling schedule and starts the cron runner.
func (s *ingestionService) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.Ingestor.PollSchedule, func() {
		s.PollAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to register poll schedule: %w", err)
	}
	s.cron.Start()
	s.logger.Info("Ingestion schedule started", logger.StringField("schedule", s.cfg.Ingestor.PollSchedule))
	return nil
}

// Stop halts the cron runner and waits for a running poll to finish.
func (s *ingestionService) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Ingestion schedule stopped")
}

// PollAll polls every active feed source concurrently.
func (s *ingestionService) PollAll(ctx context.Context) {
	sources, err := s.feedSourceRepo.FindActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load feed sources", logger.ErrorField(err))
		return
	}

	s.logger.Info("Polling feed sources", logger.IntField("count", len(sources)))

	var wg sync.WaitGroup
	maxConcurrent := s.cfg.Ingestor.MaxConcurrentFeeds
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	semaphore := make(chan struct{}, maxConcurrent)

	for i := range sources {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		source := sources[i]
		wg.Add(1)
		utils.GoSafe(func() {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			result := s.pollSource(ctx, &source)
			if recordErr := s.feedSourceRepo.RecordPoll(ctx, source.ID, utils.TimeNowUK(), firstError(result)); recordErr != nil {
				s.logger.Error("Failed to record poll outcome", logger.ErrorField(recordErr), logger.StringField("source", source.Name))
			}
			if result.Status == strategy.FAILED {
				s.notifyPollFailure(&source, result)
			}
			s.logger.Info("Feed source polled",
				logger.StringField("source", source.Name),
				logger.StringField("status", result.Status),
				logger.IntField("ingested", result.Ingested),
			)
		})
	}

	wg.Wait()
}

func firstError(result dto.FeedPollResult) error {
	if len(result.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("%s", result.Errors[0])
}

// notifyPollFailure pushes a Telegram notification for a source whose poll
// produced nothing but errors.
func (s *ingestionService) notifyPollFailure(source *entity.FeedSource, result dto.FeedPollResult) {
	if s.notifier == nil {
		return
	}
	errMsg := ""
	if err := firstError(result); err != nil {
		errMsg = err.Error()
	}
	message := telegram.FormatIngestionFailureMessage(source.Name, source.URL, utils.TimeNowUK(), errMsg)
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("Failed to send ingestion failure notification", logger.ErrorField(err), logger.StringField("source", source.Name))
	}
}

func (s *ingestionService) pollSource(ctx context.Context, source *entity.FeedSource) dto.FeedPollResult {
	result := dto.FeedPollResult{
		SourceName:  source.Name,
		SourceURL:   source.URL,
		FailedLinks: []string{},
		Errors:      []string{},
	}

	parser, ok := s.strategies[source.Kind]
	if !ok {
		result.Status = strategy.FAILED
		result.Errors = append(result.Errors, fmt.Sprintf("no parsing strategy for feed kind: %s", source.Kind))
		return result
	}

	items, err := parser.Parse(ctx, source)
	if err != nil {
		s.logger.Error("Failed to parse feed", logger.ErrorField(err), logger.StringField("source", source.Name))
		result.Status = strategy.FAILED
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	items, err = s.filterExistingItems(ctx, items)
	if err != nil {
		result.Status = strategy.FAILED
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	for _, item := range items {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		if result.Ingested >= s.cfg.Ingestor.MaxItemsPerFeed {
			break
		}

		inserted, err := s.processItem(ctx, source, item)
		if err != nil {
			s.logger.Error("Failed to process feed item", logger.ErrorField(err), logger.StringField("link", item.Link))
			result.FailedLinks = append(result.FailedLinks, item.Link)
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		if inserted {
			result.Ingested++
			time.Sleep(time.Duration(s.cfg.Ingestor.FetchDelaySeconds) * time.Second)
		}
	}

	if len(result.FailedLinks) == 0 {
		result.Status = strategy.SUCCESS
	} else if result.Ingested == 0 {
		result.Status = strategy.FAILED
	} else {
		result.Status = strategy.SKIPPED
	}
	return result
}

// filterExistingItems drops items already ingested or older than the
// configured age window.
func (s *ingestionService) filterExistingItems(ctx context.Context, items []dto.FeedItem) ([]dto.FeedItem, error) {
	if len(items) == 0 {
		return items, nil
	}

	hashes := make([]string, 0, len(items))
	for _, item := range items {
		hashes = append(hashes, itemHash(item))
	}

	existing, err := s.updateRepo.FilterExistingHashes(ctx, hashes)
	if err != nil {
		return nil, err
	}

	cutoff := utils.TimeNowUK().Add(-time.Duration(s.cfg.Ingestor.MaxItemAgeInDays*24) * time.Hour)

	var filtered []dto.FeedItem
	for i, item := range items {
		if existing[hashes[i]] {
			continue
		}
		if item.PublishedAt != nil && item.PublishedAt.In(utils.GetUKTimeLocation()).Before(cutoff) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

// itemHash identifies an item by its link alone. Publication timestamps are
// excluded so a republished link dedupes against the stored row instead of
// colliding with the url unique constraint.
func itemHash(item dto.FeedItem) string {
	sum := md5.Sum([]byte(item.Link))
	return hex.EncodeToString(sum[:])
}

func (s *ingestionService) processItem(ctx context.Context, source *entity.FeedSource, item dto.FeedItem) (bool, error) {
	publishedDateStr := "N/A"
	if item.PublishedAt != nil {
		publishedDateStr = item.PublishedAt.Format(time.RFC3339)
	}

	analysis, err := s.aiRepo.AnalyzeUpdate(ctx, source.Authority, item.Title, publishedDateStr, item.Content)
	if err != nil {
		return false, fmt.Errorf("failed to analyze publication: %w", err)
	}
	if analysis == nil {
		return false, fmt.Errorf("publication analysis returned no result")
	}

	update, err := buildUpdate(source, item, analysis)
	if err != nil {
		return false, err
	}

	inserted, err := s.updateRepo.CreateIgnoreConflict(ctx, update)
	if err != nil {
		return false, err
	}
	if !inserted {
		return false, nil
	}

	if err := s.publishUpdateIngested(ctx, update); err != nil {
		s.logger.Error("Failed to publish update ingested event", logger.ErrorField(err), logger.Field("update_id", update.ID))
	}
	return true, nil
}

func buildUpdate(source *entity.FeedSource, item dto.FeedItem, analysis *dto.UpdateAnalysisResult) (*entity.RegulatoryUpdate, error) {
	sectorScores, err := json.Marshal(analysis.SectorRelevanceScores)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sector scores: %w", err)
	}

	update := &entity.RegulatoryUpdate{
		Headline:              item.Title,
		Impact:                item.Content,
		Summary:               analysis.Summary,
		AISummary:             analysis.Summary,
		Authority:             source.Authority,
		Sector:                analysis.PrimarySector,
		Urgency:               analysis.Urgency,
		ImpactLevel:           analysis.ImpactLevel,
		SectorRelevanceScores: datatypes.JSON(sectorScores),
		ApplicableSectors:     analysis.ApplicableSectors,
		ApplicableFirmTypes:   analysis.ApplicableFirmTypes,
		Jurisdiction:          "UK",
		MinimumFirmSize:       entity.FirmSize(analysis.MinimumFirmSize),
		KeyDates:              strings.Join(analysis.KeyDates, ", "),
		AIConfidence:          analysis.ConfidenceScore,
		BusinessImpactScore:   analysis.BusinessImpactScore,
		URL:                   item.Link,
		HashIdentifier:        itemHash(item),
		PublishedAt:           item.PublishedAt,
		FetchedAt:             utils.TimeNowUK(),
	}

	if analysis.ComplianceDeadline != "" {
		deadline, err := time.ParseInLocation("2006-01-02", analysis.ComplianceDeadline, utils.GetUKTimeLocation())
		if err == nil {
			update.ComplianceDeadline = &deadline
		}
	}

	return update, nil
}

func (s *ingestionService) publishUpdateIngested(ctx context.Context, update *entity.RegulatoryUpdate) error {
	payload, err := json.Marshal(dto.StreamDataUpdateIngested{
		RegulatoryUpdateID: update.ID,
		Headline:           update.Headline,
		Authority:          update.Authority,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal stream payload: %w", err)
	}

	err = s.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamUpdateIngested,
		MaxLen: s.cfg.Redis.StreamMaxLen,
		Approx: true,
		Values: map[string]interface{}{"payload": string(payload)},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish to stream: %w", err)
	}
	return nil
}
