package dto

import (
	"encoding/json"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
)

// AlertResponse is the API representation of a regulatory alert.
type AlertResponse struct {
	ID                 uint            `json:"id"`
	FirmProfileID      uint            `json:"firm_profile_id"`
	RegulatoryUpdateID uint            `json:"regulatory_update_id"`
	Severity           string          `json:"severity"`
	UrgencyScore       int             `json:"urgency_score"`
	BusinessContext    json.RawMessage `json:"business_context,omitempty"`
	SuggestedActions   []string        `json:"suggested_actions"`
	ReadAt             *time.Time      `json:"read_at,omitempty"`
	EscalatedAt        *time.Time      `json:"escalated_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// NewAlertResponse converts an entity into its API representation.
func NewAlertResponse(a *entity.RegulatoryAlert) *AlertResponse {
	actions := []string{}
	if len(a.SuggestedActions) > 0 {
		_ = json.Unmarshal(a.SuggestedActions, &actions)
	}
	return &AlertResponse{
		ID:                 a.ID,
		FirmProfileID:      a.FirmProfileID,
		RegulatoryUpdateID: a.RegulatoryUpdateID,
		Severity:           a.Severity,
		UrgencyScore:       a.UrgencyScore,
		BusinessContext:    json.RawMessage(a.BusinessContext),
		SuggestedActions:   actions,
		ReadAt:             a.ReadAt,
		EscalatedAt:        a.EscalatedAt,
		CreatedAt:          a.CreatedAt,
	}
}
