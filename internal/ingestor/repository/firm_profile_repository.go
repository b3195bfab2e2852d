package repository

import (
	"context"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"gorm.io/gorm"
)

// FirmProfileRepository defines the ingestion-side interface for firm profiles.
type FirmProfileRepository interface {
	FindAllActive(ctx context.Context) ([]entity.FirmProfile, error)
	FindByID(ctx context.Context, id uint) (*entity.FirmProfile, error)
}

// NewFirmProfileRepository creates a new instance of FirmProfileRepository.
func NewFirmProfileRepository(db *gorm.DB) FirmProfileRepository {
	return &firmProfileRepository{db: db}
}

type firmProfileRepository struct {
	db *gorm.DB
}

// FindAllActive returns every active firm profile to alert against.
func (r *firmProfileRepository) FindAllActive(ctx context.Context) ([]entity.FirmProfile, error) {
	var profiles []entity.FirmProfile
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&profiles).Error
	return profiles, err
}

// FindByID retrieves one firm profile by primary key.
func (r *firmProfileRepository) FindByID(ctx context.Context, id uint) (*entity.FirmProfile, error) {
	var profile entity.FirmProfile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
