package repository

import (
	"context"
	"fmt"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WatchListMatchRepository persists watch list match rows.
type WatchListMatchRepository interface {
	Upsert(ctx context.Context, match *entity.WatchListMatch) error
}

// NewWatchListMatchRepository creates a new instance of WatchListMatchRepository.
func NewWatchListMatchRepository(db *gorm.DB) WatchListMatchRepository {
	return &watchListMatchRepository{db: db}
}

type watchListMatchRepository struct {
	db *gorm.DB
}

// Upsert inserts the match or refreshes the score and reasons of the
// existing (watch_list_id, regulatory_update_id) row. A dismissed match
// stays dismissed.
func (r *watchListMatchRepository) Upsert(ctx context.Context, match *entity.WatchListMatch) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "watch_list_id"}, {Name: "regulatory_update_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"match_score", "match_reasons", "updated_at"}),
	}).Create(match).Error
	if err != nil {
		return fmt.Errorf("failed to upsert watch list match: %w", err)
	}
	return nil
}
