package service

import (
	"context"
	"fmt"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/repository"
	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
)

// WatchListService defines the interface for managing watch lists.
type WatchListService interface {
	CreateWatchList(ctx context.Context, req *dto.CreateWatchListRequest) (*dto.WatchListResponse, error)
	GetWatchListByID(ctx context.Context, id uint) (*dto.WatchListResponse, error)
	GetWatchListsByUser(ctx context.Context, userID string) ([]*dto.WatchListResponse, error)
	UpdateWatchList(ctx context.Context, id uint, req *dto.UpdateWatchListRequest) (*dto.WatchListResponse, error)
	DeleteWatchList(ctx context.Context, id uint) error
	GetMatches(ctx context.Context, watchListID uint, includeDismissed bool) ([]*dto.WatchListMatchResponse, error)
	DismissMatch(ctx context.Context, matchID uint) error
}

// NewWatchListService creates a new watch list service.
func NewWatchListService(watchListRepo repository.WatchListRepository, logger *logger.Logger) WatchListService {
	return &watchListService{watchListRepo: watchListRepo, logger: logger}
}

type watchListService struct {
	watchListRepo repository.WatchListRepository
	logger        *logger.Logger
}

func (s *watchListService) CreateWatchList(ctx context.Context, req *dto.CreateWatchListRequest) (*dto.WatchListResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("watch list name is required")
	}
	list := &entity.WatchList{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Keywords:    req.Keywords,
		Authorities: req.Authorities,
		Sectors:     req.Sectors,
		IsActive:    true,
	}
	if err := s.watchListRepo.Create(ctx, list); err != nil {
		s.logger.Error("Failed to create watch list", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to create watch list: %w", err)
	}
	return dto.NewWatchListResponse(list), nil
}

func (s *watchListService) GetWatchListByID(ctx context.Context, id uint) (*dto.WatchListResponse, error) {
	list, err := s.watchListRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewWatchListResponse(list), nil
}

func (s *watchListService) GetWatchListsByUser(ctx context.Context, userID string) ([]*dto.WatchListResponse, error) {
	lists, err := s.watchListRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.WatchListResponse, 0, len(lists))
	for i := range lists {
		responses = append(responses, dto.NewWatchListResponse(&lists[i]))
	}
	return responses, nil
}

func (s *watchListService) UpdateWatchList(ctx context.Context, id uint, req *dto.UpdateWatchListRequest) (*dto.WatchListResponse, error) {
	list, err := s.watchListRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	list.Name = req.Name
	list.Description = req.Description
	list.Keywords = req.Keywords
	list.Authorities = req.Authorities
	list.Sectors = req.Sectors
	if req.IsActive != nil {
		list.IsActive = *req.IsActive
	}

	if err := s.watchListRepo.Update(ctx, list); err != nil {
		s.logger.Error("Failed to update watch list", logger.ErrorField(err), logger.Field("watch_list_id", id))
		return nil, fmt.Errorf("failed to update watch list: %w", err)
	}
	return dto.NewWatchListResponse(list), nil
}

func (s *watchListService) DeleteWatchList(ctx context.Context, id uint) error {
	if err := s.watchListRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete watch list", logger.ErrorField(err), logger.Field("watch_list_id", id))
		return fmt.Errorf("failed to delete watch list: %w", err)
	}
	return nil
}

func (s *watchListService) GetMatches(ctx context.Context, watchListID uint, includeDismissed bool) ([]*dto.WatchListMatchResponse, error) {
	matches, err := s.watchListRepo.FindMatches(ctx, watchListID, includeDismissed)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.WatchListMatchResponse, 0, len(matches))
	for i := range matches {
		responses = append(responses, dto.NewWatchListMatchResponse(&matches[i]))
	}
	return responses, nil
}

func (s *watchListService) DismissMatch(ctx context.Context, matchID uint) error {
	if err := s.watchListRepo.DismissMatch(ctx, matchID); err != nil {
		s.logger.Error("Failed to dismiss match", logger.ErrorField(err), logger.Field("match_id", matchID))
		return fmt.Errorf("failed to dismiss match: %w", err)
	}
	return nil
}
