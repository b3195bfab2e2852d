package repository

import (
	"context"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"gorm.io/gorm"
)

// WatchListRepository defines the interface for watch list persistence.
type WatchListRepository interface {
	Create(ctx context.Context, list *entity.WatchList) error
	FindByID(ctx context.Context, id uint) (*entity.WatchList, error)
	FindByUserID(ctx context.Context, userID string) ([]entity.WatchList, error)
	Update(ctx context.Context, list *entity.WatchList) error
	Delete(ctx context.Context, id uint) error
	FindMatches(ctx context.Context, watchListID uint, includeDismissed bool) ([]entity.WatchListMatch, error)
	DismissMatch(ctx context.Context, matchID uint) error
}

// NewWatchListRepository creates a new GORM-based watch list repository.
func NewWatchListRepository(db *gorm.DB) WatchListRepository {
	return &watchListRepository{db: db}
}

type watchListRepository struct {
	db *gorm.DB
}

func (r *watchListRepository) Create(ctx context.Context, list *entity.WatchList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *watchListRepository) FindByID(ctx context.Context, id uint) (*entity.WatchList, error) {
	var list entity.WatchList
	if err := r.db.WithContext(ctx).First(&list, id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *watchListRepository) FindByUserID(ctx context.Context, userID string) ([]entity.WatchList, error) {
	var lists []entity.WatchList
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *watchListRepository) Update(ctx context.Context, list *entity.WatchList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

// Delete removes a watch list and its matches.
func (r *watchListRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("watch_list_id = ?", id).Delete(&entity.WatchListMatch{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.WatchList{}, id).Error
	})
}

func (r *watchListRepository) FindMatches(ctx context.Context, watchListID uint, includeDismissed bool) ([]entity.WatchListMatch, error) {
	q := r.db.WithContext(ctx).Where("watch_list_id = ?", watchListID)
	if !includeDismissed {
		q = q.Where("dismissed = ?", false)
	}
	var matches []entity.WatchListMatch
	if err := q.Order("match_score DESC").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *watchListRepository) DismissMatch(ctx context.Context, matchID uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.WatchListMatch{}).
		Where("id = ?", matchID).
		Update("dismissed", true).Error
}
