package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/repository"
	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
)

// FirmProfileService defines the interface for managing firm profiles.
type FirmProfileService interface {
	CreateProfile(ctx context.Context, req *dto.CreateFirmProfileRequest) (*dto.FirmProfileResponse, error)
	GetProfileByID(ctx context.Context, id uint) (*dto.FirmProfileResponse, error)
	GetActiveProfile(ctx context.Context, userID string) (*dto.FirmProfileResponse, error)
	UpdateProfile(ctx context.Context, id uint, req *dto.UpdateFirmProfileRequest) (*dto.FirmProfileResponse, error)
	DeactivateProfile(ctx context.Context, id uint) error
}

// NewFirmProfileService creates a new firm profile service.
func NewFirmProfileService(profileRepo repository.FirmProfileRepository, logger *logger.Logger) FirmProfileService {
	return &firmProfileService{profileRepo: profileRepo, logger: logger}
}

type firmProfileService struct {
	profileRepo repository.FirmProfileRepository
	logger      *logger.Logger
}

// CreateProfile validates and persists a new firm profile. Validation runs
// here, at save time; the scoring engine assumes valid profiles. Any earlier
// active profile for the user is retired first, so each user keeps exactly
// one active profile.
func (s *firmProfileService) CreateProfile(ctx context.Context, req *dto.CreateFirmProfileRequest) (*dto.FirmProfileResponse, error) {
	profile, err := ProfileFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeactivateByUserID(ctx, profile.UserID); err != nil {
		s.logger.Error("Failed to retire previous firm profile", logger.ErrorField(err), logger.StringField("user_id", profile.UserID))
		return nil, fmt.Errorf("failed to retire previous firm profile: %w", err)
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		s.logger.Error("Failed to create firm profile", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to create firm profile: %w", err)
	}
	return dto.NewFirmProfileResponse(profile), nil
}

func (s *firmProfileService) GetProfileByID(ctx context.Context, id uint) (*dto.FirmProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewFirmProfileResponse(profile), nil
}

func (s *firmProfileService) GetActiveProfile(ctx context.Context, userID string) (*dto.FirmProfileResponse, error) {
	profile, err := s.profileRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewFirmProfileResponse(profile), nil
}

func (s *firmProfileService) UpdateProfile(ctx context.Context, id uint, req *dto.UpdateFirmProfileRequest) (*dto.FirmProfileResponse, error) {
	existing, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := ProfileFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.IsActive = existing.IsActive
	updated.CreatedAt = existing.CreatedAt

	if err := s.profileRepo.Update(ctx, updated); err != nil {
		s.logger.Error("Failed to update firm profile", logger.ErrorField(err), logger.Field("profile_id", id))
		return nil, fmt.Errorf("failed to update firm profile: %w", err)
	}
	return dto.NewFirmProfileResponse(updated), nil
}

func (s *firmProfileService) DeactivateProfile(ctx context.Context, id uint) error {
	if err := s.profileRepo.Deactivate(ctx, id); err != nil {
		s.logger.Error("Failed to deactivate firm profile", logger.ErrorField(err), logger.Field("profile_id", id))
		return fmt.Errorf("failed to deactivate firm profile: %w", err)
	}
	return nil
}

// ProfileFromRequest builds and validates a FirmProfile entity from an API
// payload, applying the UK jurisdiction default and preference defaults.
func ProfileFromRequest(req *dto.CreateFirmProfileRequest) (*entity.FirmProfile, error) {
	jurisdictions := req.Jurisdictions
	if len(jurisdictions) == 0 {
		jurisdictions = []string{"UK"}
	}

	prefs := entity.DefaultAIAnalysisPreferences()
	if req.AIPreferences != nil {
		prefs = *req.AIPreferences
	}
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ai preferences: %w", err)
	}

	profile := &entity.FirmProfile{
		UserID:             req.UserID,
		Name:               req.Name,
		FirmType:           entity.FirmType(req.FirmType),
		Size:               entity.FirmSize(req.Size),
		Sectors:            req.Sectors,
		Jurisdictions:      jurisdictions,
		RiskAppetite:       entity.RiskAppetite(req.RiskAppetite),
		ComplianceMaturity: req.ComplianceMaturity,
		BusinessModel:      req.BusinessModel,
		FocusAreas:         req.FocusAreas,
		AIPreferences:      prefsJSON,
		IsActive:           true,
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}
