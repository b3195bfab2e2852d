package repository

import (
	"context"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"gorm.io/gorm"
)

// WatchListRepository defines the ingestion-side interface for watch lists.
type WatchListRepository interface {
	FindActive(ctx context.Context) ([]entity.WatchList, error)
}

// NewWatchListRepository creates a new instance of WatchListRepository.
func NewWatchListRepository(db *gorm.DB) WatchListRepository {
	return &watchListRepository{db: db}
}

type watchListRepository struct {
	db *gorm.DB
}

// FindActive returns every watch list that should be matched against new
// updates.
func (r *watchListRepository) FindActive(ctx context.Context) ([]entity.WatchList, error) {
	var lists []entity.WatchList
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&lists).Error
	return lists, err
}
