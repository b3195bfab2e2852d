package repository

import (
	"context"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"gorm.io/gorm"
)

// RegulatoryUpdateRepository defines the read interface over ingested
// updates used by the API service.
type RegulatoryUpdateRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.RegulatoryUpdate, error)
	Find(ctx context.Context, filter dto.UpdateFilter) ([]entity.RegulatoryUpdate, int64, error)
	FindRecent(ctx context.Context, since time.Time, limit int) ([]entity.RegulatoryUpdate, error)
}

// NewRegulatoryUpdateRepository creates a new GORM-based update repository.
func NewRegulatoryUpdateRepository(db *gorm.DB) RegulatoryUpdateRepository {
	return &regulatoryUpdateRepository{db: db}
}

type regulatoryUpdateRepository struct {
	db *gorm.DB
}

func (r *regulatoryUpdateRepository) FindByID(ctx context.Context, id uint) (*entity.RegulatoryUpdate, error) {
	var update entity.RegulatoryUpdate
	if err := r.db.WithContext(ctx).First(&update, id).Error; err != nil {
		return nil, err
	}
	return &update, nil
}

// Find applies the dashboard filters and pagination, returning the page and
// the total row count.
func (r *regulatoryUpdateRepository) Find(ctx context.Context, filter dto.UpdateFilter) ([]entity.RegulatoryUpdate, int64, error) {
	filter.Normalize()

	q := r.db.WithContext(ctx).Model(&entity.RegulatoryUpdate{})
	if filter.Authority != "" {
		q = q.Where("authority = ?", filter.Authority)
	}
	if filter.Sector != "" {
		q = q.Where("sector = ? OR ? = ANY(applicable_sectors)", filter.Sector, filter.Sector)
	}
	if filter.Impact != "" {
		q = q.Where("impact_level = ?", filter.Impact)
	}
	if filter.Urgency != "" {
		q = q.Where("urgency = ?", filter.Urgency)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("headline ILIKE ? OR impact ILIKE ? OR ai_summary ILIKE ?", like, like, like)
	}
	if filter.From != nil {
		q = q.Where("published_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("published_at <= ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var updates []entity.RegulatoryUpdate
	err := q.Order("published_at DESC NULLS LAST, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&updates).Error
	if err != nil {
		return nil, 0, err
	}
	return updates, total, nil
}

// FindRecent returns updates fetched since the given time, newest first,
// feeding the intelligence scoring pass.
func (r *regulatoryUpdateRepository) FindRecent(ctx context.Context, since time.Time, limit int) ([]entity.RegulatoryUpdate, error) {
	var updates []entity.RegulatoryUpdate
	err := r.db.WithContext(ctx).
		Where("fetched_at >= ?", since).
		Order("fetched_at DESC").
		Limit(limit).
		Find(&updates).Error
	if err != nil {
		return nil, err
	}
	return updates, nil
}
