package repository

import (
	"context"
	"fmt"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegulatoryUpdateRepository defines the ingestion-side interface for
// regulatory update persistence.
type RegulatoryUpdateRepository interface {
	CreateIgnoreConflict(ctx context.Context, update *entity.RegulatoryUpdate) (bool, error)
	FindByID(ctx context.Context, id uint) (*entity.RegulatoryUpdate, error)
	FilterExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error)
}

// NewRegulatoryUpdateRepository creates a new instance of RegulatoryUpdateRepository.
func NewRegulatoryUpdateRepository(db *gorm.DB) RegulatoryUpdateRepository {
	return &regulatoryUpdateRepository{db: db}
}

type regulatoryUpdateRepository struct {
	db *gorm.DB
}

// CreateIgnoreConflict inserts the update, silently skipping rows whose
// hash identifier already exists. It reports whether a row was inserted.
func (r *regulatoryUpdateRepository) CreateIgnoreConflict(ctx context.Context, update *entity.RegulatoryUpdate) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash_identifier"}},
		DoNothing: true,
	}).Create(update)

	if tx.Error != nil {
		return false, fmt.Errorf("failed to create regulatory update: %w", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

// FindByID retrieves one update by primary key.
func (r *regulatoryUpdateRepository) FindByID(ctx context.Context, id uint) (*entity.RegulatoryUpdate, error) {
	var update entity.RegulatoryUpdate
	if err := r.db.WithContext(ctx).First(&update, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find regulatory update: %w", err)
	}
	return &update, nil
}

// FilterExistingHashes returns the subset of the given hash identifiers
// already present in the database.
func (r *regulatoryUpdateRepository) FilterExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(hashes) == 0 {
		return existing, nil
	}

	var rows []entity.RegulatoryUpdate
	err := r.db.WithContext(ctx).Select("id", "hash_identifier").
		Where("hash_identifier IN ?", hashes).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing updates: %w", err)
	}

	for _, row := range rows {
		existing[row.HashIdentifier] = true
	}
	return existing, nil
}
