package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"gorm.io/gorm"
)

// RegulatoryAlertRepository persists alerts raised by the matcher.
type RegulatoryAlertRepository interface {
	Create(ctx context.Context, alert *entity.RegulatoryAlert) error
	FindUnreadUnescalated(ctx context.Context) ([]entity.RegulatoryAlert, error)
	MarkEscalated(ctx context.Context, id uint, at time.Time) error
}

// NewRegulatoryAlertRepository creates a new instance of RegulatoryAlertRepository.
func NewRegulatoryAlertRepository(db *gorm.DB) RegulatoryAlertRepository {
	return &regulatoryAlertRepository{db: db}
}

type regulatoryAlertRepository struct {
	db *gorm.DB
}

// Create saves a new alert.
func (r *regulatoryAlertRepository) Create(ctx context.Context, alert *entity.RegulatoryAlert) error {
	if err := r.db.WithContext(ctx).Create(alert).Error; err != nil {
		return fmt.Errorf("failed to create regulatory alert: %w", err)
	}
	return nil
}

// FindUnreadUnescalated returns alerts nobody has read that were never
// escalated, oldest first.
func (r *regulatoryAlertRepository) FindUnreadUnescalated(ctx context.Context) ([]entity.RegulatoryAlert, error) {
	var alerts []entity.RegulatoryAlert
	err := r.db.WithContext(ctx).
		Where("read_at IS NULL AND escalated_at IS NULL").
		Order("created_at ASC").
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unread alerts: %w", err)
	}
	return alerts, nil
}

// MarkEscalated stamps the escalation time on an alert.
func (r *regulatoryAlertRepository) MarkEscalated(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.RegulatoryAlert{}).
		Where("id = ?", id).
		Update("escalated_at", at).Error
}
