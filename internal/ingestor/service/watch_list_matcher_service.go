package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/repository"
	"github.com/MEMAtest/horizon-scanner-backend/internal/scoring"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/common"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
)

const (
	cacheKeyActiveWatchLists = "watch_lists:active"
	cacheKeyActiveProfiles   = "firm_profiles:active"
)

// WatchListMatcherService consumes update-ingested events, matches each new
// update against active watch lists and hands it to the alert service.
type WatchListMatcherService interface {
	ProcessUpdateIngested(ctx context.Context)
	ProcessPending(ctx context.Context)
}

// NewWatchListMatcherService creates a new WatchListMatcherService.
func NewWatchListMatcherService(
	redisClient *redis.Client,
	updateRepo repository.RegulatoryUpdateRepository,
	watchListRepo repository.WatchListRepository,
	matchRepo repository.WatchListMatchRepository,
	profileRepo repository.FirmProfileRepository,
	alertService AlertService,
	log *logger.Logger,
) WatchListMatcherService {
	return &watchListMatcherService{
		redisClient:   redisClient,
		updateRepo:    updateRepo,
		watchListRepo: watchListRepo,
		matchRepo:     matchRepo,
		profileRepo:   profileRepo,
		alertService:  alertService,
		logger:        log,
		inmemoryCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

type watchListMatcherService struct {
	redisClient   *redis.Client
	updateRepo    repository.RegulatoryUpdateRepository
	watchListRepo repository.WatchListRepository
	matchRepo     repository.WatchListMatchRepository
	profileRepo   repository.FirmProfileRepository
	alertService  AlertService
	logger        *logger.Logger
	inmemoryCache *cache.Cache
}

// ProcessUpdateIngested dequeues and processes a single update-ingested event.
func (s *watchListMatcherService) ProcessUpdateIngested(ctx context.Context) {
	streams, err := s.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		Streams:  []string{common.RedisStreamUpdateIngested, ">"},
		Count:    1,
		Block:    2 * time.Second,
	}).Result()

	if err != nil {
		// Context cancellation and empty reads are expected during shutdown
		// or idle periods.
		if err == context.Canceled || err == redis.Nil {
			return
		}
		s.logger.Error("Failed to read from stream", logger.ErrorField(err))
		return
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return
	}

	s.processMessage(ctx, streams[0].Messages[0])
}

// ProcessPending reclaims messages left pending by a crashed consumer and
// reprocesses them.
func (s *watchListMatcherService) ProcessPending(ctx context.Context) {
	messages, _, err := s.redisClient.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   common.RedisStreamUpdateIngested,
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		MinIdle:  time.Minute,
		Start:    "0",
		Count:    10,
	}).Result()

	if err != nil {
		if err == context.Canceled || err == redis.Nil {
			return
		}
		s.logger.Error("Failed to claim pending messages", logger.ErrorField(err))
		return
	}

	for _, message := range messages {
		s.processMessage(ctx, message)
	}
}

func (s *watchListMatcherService) processMessage(ctx context.Context, message redis.XMessage) {
	ack := func() {
		if err := s.redisClient.XAck(ctx, common.RedisStreamUpdateIngested, common.RedisStreamGroup, message.ID).Err(); err != nil {
			s.logger.Error("Failed to acknowledge message", logger.ErrorField(err), logger.Field("message_id", message.ID))
		}
	}

	payload, ok := message.Values["payload"].(string)
	if !ok {
		s.logger.Error("field 'payload' not found or not a string in stream message", logger.Field("message_id", message.ID))
		ack()
		return
	}

	var event dto.StreamDataUpdateIngested
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		s.logger.Error("Failed to unmarshal stream payload", logger.ErrorField(err), logger.Field("message_id", message.ID))
		ack()
		return
	}

	s.logger.Info("Processing ingested update",
		logger.Field("update_id", event.RegulatoryUpdateID),
		logger.StringField("authority", event.Authority),
	)

	if err := s.matchUpdate(ctx, event.RegulatoryUpdateID); err != nil {
		s.logger.Error("Failed to match ingested update", logger.ErrorField(err), logger.Field("update_id", event.RegulatoryUpdateID))
		return
	}
	ack()
}

func (s *watchListMatcherService) matchUpdate(ctx context.Context, updateID uint) error {
	update, err := s.updateRepo.FindByID(ctx, updateID)
	if err != nil {
		return err
	}

	lists, err := s.activeWatchLists(ctx)
	if err != nil {
		return err
	}

	for i := range lists {
		list := &lists[i]
		score, reasons := scoring.MatchWatchList(list, update)
		if score <= 0 {
			continue
		}

		reasonsJSON, err := json.Marshal(reasons)
		if err != nil {
			s.logger.Error("Failed to marshal match reasons", logger.ErrorField(err), logger.Field("watch_list_id", list.ID))
			continue
		}

		match := &entity.WatchListMatch{
			WatchListID:        list.ID,
			RegulatoryUpdateID: update.ID,
			MatchScore:         score,
			MatchReasons:       datatypes.JSON(reasonsJSON),
		}
		if err := s.matchRepo.Upsert(ctx, match); err != nil {
			s.logger.Error("Failed to save watch list match", logger.ErrorField(err), logger.Field("watch_list_id", list.ID))
			continue
		}

		s.logger.Info("Watch list matched",
			logger.Field("watch_list_id", list.ID),
			logger.Field("update_id", update.ID),
			logger.Field("score", score),
		)
	}

	profiles, err := s.activeProfiles(ctx)
	if err != nil {
		return err
	}
	for i := range profiles {
		s.alertService.EvaluateUpdate(ctx, &profiles[i], update)
	}

	return nil
}

func (s *watchListMatcherService) activeWatchLists(ctx context.Context) ([]entity.WatchList, error) {
	if cached, found := s.inmemoryCache.Get(cacheKeyActiveWatchLists); found {
		return cached.([]entity.WatchList), nil
	}
	lists, err := s.watchListRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	s.inmemoryCache.Set(cacheKeyActiveWatchLists, lists, cache.DefaultExpiration)
	return lists, nil
}

func (s *watchListMatcherService) activeProfiles(ctx context.Context) ([]entity.FirmProfile, error) {
	if cached, found := s.inmemoryCache.Get(cacheKeyActiveProfiles); found {
		return cached.([]entity.FirmProfile), nil
	}
	profiles, err := s.profileRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	s.inmemoryCache.Set(cacheKeyActiveProfiles, profiles, cache.DefaultExpiration)
	return profiles, nil
}
