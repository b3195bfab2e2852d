package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/config"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/repository"
	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/internal/scoring"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
)

// IntelligenceService runs personalized scoring passes for the dashboard.
type IntelligenceService interface {
	BuildIntelligence(ctx context.Context, req *dto.IntelligenceRequest) (*scoring.IntelligenceBundle, error)
}

// NewIntelligenceService creates a new intelligence service.
func NewIntelligenceService(
	cfg *config.Config,
	profileRepo repository.FirmProfileRepository,
	updateRepo repository.RegulatoryUpdateRepository,
	logger *logger.Logger,
) IntelligenceService {
	return &intelligenceService{
		cfg:         cfg,
		profileRepo: profileRepo,
		updateRepo:  updateRepo,
		logger:      logger,
	}
}

type intelligenceService struct {
	cfg         *config.Config
	profileRepo repository.FirmProfileRepository
	updateRepo  repository.RegulatoryUpdateRepository
	logger      *logger.Logger
}

// BuildIntelligence resolves the firm profile, fetches the recent update
// batch and runs the scoring pass. The scoring itself is pure and
// request-scoped; nothing is cached between calls.
func (s *intelligenceService) BuildIntelligence(ctx context.Context, req *dto.IntelligenceRequest) (*scoring.IntelligenceBundle, error) {
	profile, err := s.resolveProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -s.cfg.Intelligence.UpdateAgeDays)
	updates, err := s.updateRepo.FindRecent(ctx, since, s.cfg.Intelligence.MaxUpdateBatch)
	if err != nil {
		s.logger.Error("Failed to fetch updates for scoring", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to fetch updates: %w", err)
	}

	bundle := scoring.BuildIntelligence(profile, updates, time.Now())
	s.logger.Debug("Scoring pass complete",
		logger.IntField("evaluated", bundle.RelevanceStats.TotalEvaluated),
		logger.IntField("relevant", bundle.RelevanceStats.Relevant))
	return &bundle, nil
}

func (s *intelligenceService) resolveProfile(ctx context.Context, req *dto.IntelligenceRequest) (*entity.FirmProfile, error) {
	if req.Profile != nil {
		return ProfileFromRequest(req.Profile)
	}
	if req.UserID == "" {
		return nil, fmt.Errorf("either user_id or an inline profile is required")
	}
	profile, err := s.profileRepo.FindActiveByUserID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load firm profile: %w", err)
	}
	return profile, nil
}
