package repository

import (
	"context"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"gorm.io/gorm"
)

// FirmProfileRepository defines the interface for firm profile persistence.
type FirmProfileRepository interface {
	Create(ctx context.Context, profile *entity.FirmProfile) error
	FindByID(ctx context.Context, id uint) (*entity.FirmProfile, error)
	FindActiveByUserID(ctx context.Context, userID string) (*entity.FirmProfile, error)
	Update(ctx context.Context, profile *entity.FirmProfile) error
	Deactivate(ctx context.Context, id uint) error
	DeactivateByUserID(ctx context.Context, userID string) error
}

// NewFirmProfileRepository creates a new GORM-based firm profile repository.
func NewFirmProfileRepository(db *gorm.DB) FirmProfileRepository {
	return &firmProfileRepository{db: db}
}

type firmProfileRepository struct {
	db *gorm.DB
}

func (r *firmProfileRepository) Create(ctx context.Context, profile *entity.FirmProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *firmProfileRepository) FindByID(ctx context.Context, id uint) (*entity.FirmProfile, error) {
	var profile entity.FirmProfile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindActiveByUserID returns the single active profile for a user.
func (r *firmProfileRepository) FindActiveByUserID(ctx context.Context, userID string) (*entity.FirmProfile, error) {
	var profile entity.FirmProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *firmProfileRepository) Update(ctx context.Context, profile *entity.FirmProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Deactivate soft-deactivates a profile; profiles are never hard-deleted.
func (r *firmProfileRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.FirmProfile{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// DeactivateByUserID retires every active profile a user has, so a fresh
// profile can become the single active one.
func (r *firmProfileRepository) DeactivateByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&entity.FirmProfile{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error
}
