package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/config"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/service"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/common"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// RedisConsumer manages the consumption of update-ingested events from a
// Redis stream.
type RedisConsumer struct {
	cfg            *config.Config
	redisClient    *redis.Client
	matcherService service.WatchListMatcherService
	alertService   service.AlertService
	logger         *logger.Logger
	stopChan       chan struct{}
	wg             sync.WaitGroup
}

// NewRedisConsumer creates a new RedisConsumer.
func NewRedisConsumer(
	cfg *config.Config,
	redisClient *redis.Client,
	matcherService service.WatchListMatcherService,
	alertService service.AlertService,
	log *logger.Logger,
) *RedisConsumer {
	return &RedisConsumer{
		cfg:            cfg,
		redisClient:    redisClient,
		matcherService: matcherService,
		alertService:   alertService,
		logger:         log,
		stopChan:       make(chan struct{}),
	}
}

// Start begins the consumer's processing loops.
func (c *RedisConsumer) Start(ctx context.Context) {
	c.logger.Info("Redis consumer started")
	c.RegisterStreamHandler(ctx, c.matcherService.ProcessUpdateIngested, common.RedisStreamUpdateIngested, c.cfg.Ingestor.RedisStreamUpdateIngestedTimeout)

	// reclaim messages stuck in the pending entries list
	c.RegisterTickerHandler(ctx, c.matcherService.ProcessPending, c.cfg.Ingestor.RedisStreamUpdateIngestedRetryInterval, c.cfg.Ingestor.RedisStreamUpdateIngestedMaxIdleDuration, common.RedisStreamUpdateIngested+"-retry")

	// escalate alerts that sat unread past the escalation window
	c.RegisterTickerHandler(ctx, c.alertService.EscalateStaleUnread, c.cfg.Ingestor.AlertSweepInterval, c.cfg.Ingestor.AlertSweepTimeout, "alert-stale-unread-sweep")
}

func (c *RedisConsumer) RegisterStreamHandler(ctx context.Context, fn func(ctx context.Context), streamName string, timeout time.Duration) {
	c.logger.Info("Registering stream handler", logger.Field("stream", streamName))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Redis consumer stopping due to context cancellation")
				return
			case <-c.stopChan:
				c.logger.Info("Redis consumer stopping")
				return
			default:
				ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
				fn(ctxTimeout)
				cancel()
			}
		}
	})
}

func (c *RedisConsumer) RegisterTickerHandler(ctx context.Context, fn func(ctx context.Context), interval time.Duration, timeout time.Duration, name string) {
	c.logger.Info("Registering ticker handler",
		logger.Field("name", name),
		logger.Field("interval", interval),
		logger.Field("timeout", timeout))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
				fn(ctxTimeout)
				cancel()
			case <-ctx.Done():
				c.logger.Info("Ticker handler stopping due to context cancellation", logger.Field("name", name))
				return
			case <-c.stopChan:
				c.logger.Info("Ticker handler stopping", logger.Field("name", name))
				return
			}
		}
	})
}

// Stop gracefully shuts down the consumer.
func (c *RedisConsumer) Stop() {
	close(c.stopChan)
	c.wg.Wait()
	c.logger.Info("Redis consumer stopped")
}
