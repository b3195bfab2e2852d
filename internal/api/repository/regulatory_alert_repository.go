package repository

import (
	"context"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"gorm.io/gorm"
)

// RegulatoryAlertRepository defines the read/ack interface over alerts.
type RegulatoryAlertRepository interface {
	FindByProfileID(ctx context.Context, firmProfileID uint, unreadOnly bool) ([]entity.RegulatoryAlert, error)
	MarkRead(ctx context.Context, alertID uint) error
}

// NewRegulatoryAlertRepository creates a new GORM-based alert repository.
func NewRegulatoryAlertRepository(db *gorm.DB) RegulatoryAlertRepository {
	return &regulatoryAlertRepository{db: db}
}

type regulatoryAlertRepository struct {
	db *gorm.DB
}

func (r *regulatoryAlertRepository) FindByProfileID(ctx context.Context, firmProfileID uint, unreadOnly bool) ([]entity.RegulatoryAlert, error) {
	q := r.db.WithContext(ctx).Where("firm_profile_id = ?", firmProfileID)
	if unreadOnly {
		q = q.Where("read_at IS NULL")
	}
	var alerts []entity.RegulatoryAlert
	if err := q.Order("urgency_score DESC, created_at DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *regulatoryAlertRepository) MarkRead(ctx context.Context, alertID uint) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entity.RegulatoryAlert{}).
		Where("id = ? AND read_at IS NULL", alertID).
		Update("read_at", now).Error
}
