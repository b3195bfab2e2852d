package service

import (
	"context"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/repository"
	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
)

// UpdatePage is one page of filtered regulatory updates.
type UpdatePage struct {
	Updates []entity.RegulatoryUpdate `json:"updates"`
	Total   int64                     `json:"total"`
	Limit   int                       `json:"limit"`
	Offset  int                       `json:"offset"`
}

// UpdateService exposes the read side of the regulatory update store.
type UpdateService interface {
	GetUpdates(ctx context.Context, filter dto.UpdateFilter) (*UpdatePage, error)
	GetUpdateByID(ctx context.Context, id uint) (*entity.RegulatoryUpdate, error)
}

// NewUpdateService creates a new update service.
func NewUpdateService(updateRepo repository.RegulatoryUpdateRepository, logger *logger.Logger) UpdateService {
	return &updateService{updateRepo: updateRepo, logger: logger}
}

type updateService struct {
	updateRepo repository.RegulatoryUpdateRepository
	logger     *logger.Logger
}

func (s *updateService) GetUpdates(ctx context.Context, filter dto.UpdateFilter) (*UpdatePage, error) {
	filter.Normalize()
	updates, total, err := s.updateRepo.Find(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to fetch updates", logger.ErrorField(err))
		return nil, err
	}
	return &UpdatePage{
		Updates: updates,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}

func (s *updateService) GetUpdateByID(ctx context.Context, id uint) (*entity.RegulatoryUpdate, error) {
	return s.updateRepo.FindByID(ctx, id)
}
