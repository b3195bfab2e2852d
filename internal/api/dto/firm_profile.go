package dto

import (
	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
)

// CreateFirmProfileRequest is the payload for creating a firm profile.
type CreateFirmProfileRequest struct {
	UserID             string                        `json:"user_id"`
	Name               string                        `json:"name"`
	FirmType           string                        `json:"firm_type"`
	Size               string                        `json:"size"`
	Sectors            []string                      `json:"sectors"`
	Jurisdictions      []string                      `json:"jurisdictions"`
	RiskAppetite       string                        `json:"risk_appetite"`
	ComplianceMaturity int                           `json:"compliance_maturity"`
	BusinessModel      string                        `json:"business_model"`
	FocusAreas         []string                      `json:"focus_areas"`
	AIPreferences      *entity.AIAnalysisPreferences `json:"ai_preferences,omitempty"`
}

// UpdateFirmProfileRequest mirrors the create payload for full updates.
type UpdateFirmProfileRequest = CreateFirmProfileRequest

// FirmProfileResponse is the API representation of a firm profile.
type FirmProfileResponse struct {
	ID                 uint                         `json:"id"`
	UserID             string                       `json:"user_id"`
	Name               string                       `json:"name"`
	FirmType           string                       `json:"firm_type"`
	Size               string                       `json:"size"`
	Sectors            []string                     `json:"sectors"`
	Jurisdictions      []string                     `json:"jurisdictions"`
	RiskAppetite       string                       `json:"risk_appetite"`
	ComplianceMaturity int                          `json:"compliance_maturity"`
	BusinessModel      string                       `json:"business_model"`
	FocusAreas         []string                     `json:"focus_areas"`
	AIPreferences      entity.AIAnalysisPreferences `json:"ai_preferences"`
	IsActive           bool                         `json:"is_active"`
}

// NewFirmProfileResponse converts an entity into its API representation.
func NewFirmProfileResponse(p *entity.FirmProfile) *FirmProfileResponse {
	return &FirmProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		Name:               p.Name,
		FirmType:           string(p.FirmType),
		Size:               string(p.Size),
		Sectors:            p.Sectors,
		Jurisdictions:      p.Jurisdictions,
		RiskAppetite:       string(p.RiskAppetite),
		ComplianceMaturity: p.ComplianceMaturity,
		BusinessModel:      p.BusinessModel,
		FocusAreas:         p.FocusAreas,
		AIPreferences:      p.Preferences(),
		IsActive:           p.IsActive,
	}
}
