package repository

import (
	"context"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"gorm.io/gorm"
)

// FeedSourceRepository defines the interface for interacting with feed sources.
type FeedSourceRepository interface {
	FindActive(ctx context.Context) ([]entity.FeedSource, error)
	RecordPoll(ctx context.Context, id uint, polledAt time.Time, pollErr error) error
}

// NewFeedSourceRepository creates a new instance of FeedSourceRepository.
func NewFeedSourceRepository(db *gorm.DB) FeedSourceRepository {
	return &feedSourceRepository{db: db}
}

type feedSourceRepository struct {
	db *gorm.DB
}

// FindActive returns every feed source currently enabled for polling.
func (r *feedSourceRepository) FindActive(ctx context.Context) ([]entity.FeedSource, error) {
	var sources []entity.FeedSource
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("authority, name").Find(&sources).Error
	return sources, err
}

// RecordPoll stores the outcome of one polling attempt on the source row.
func (r *feedSourceRepository) RecordPoll(ctx context.Context, id uint, polledAt time.Time, pollErr error) error {
	lastError := ""
	if pollErr != nil {
		lastError = pollErr.Error()
	}
	return r.db.WithContext(ctx).Model(&entity.FeedSource{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_polled_at": polledAt,
			"last_error":     lastError,
		}).Error
}
