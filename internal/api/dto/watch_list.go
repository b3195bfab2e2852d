package dto

import (
	"encoding/json"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
)

// CreateWatchListRequest is the payload for creating a watch list.
type CreateWatchListRequest struct {
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Authorities []string `json:"authorities"`
	Sectors     []string `json:"sectors"`
}

// UpdateWatchListRequest mirrors the create payload plus the active flag.
type UpdateWatchListRequest struct {
	CreateWatchListRequest
	IsActive *bool `json:"is_active,omitempty"`
}

// WatchListResponse is the API representation of a watch list.
type WatchListResponse struct {
	ID          uint     `json:"id"`
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Authorities []string `json:"authorities"`
	Sectors     []string `json:"sectors"`
	IsActive    bool     `json:"is_active"`
}

// NewWatchListResponse converts an entity into its API representation.
func NewWatchListResponse(w *entity.WatchList) *WatchListResponse {
	return &WatchListResponse{
		ID:          w.ID,
		UserID:      w.UserID,
		Name:        w.Name,
		Description: w.Description,
		Keywords:    w.Keywords,
		Authorities: w.Authorities,
		Sectors:     w.Sectors,
		IsActive:    w.IsActive,
	}
}

// WatchListMatchResponse is the API representation of a persisted match.
type WatchListMatchResponse struct {
	ID                 uint                 `json:"id"`
	WatchListID        uint                 `json:"watch_list_id"`
	RegulatoryUpdateID uint                 `json:"regulatory_update_id"`
	MatchScore         float64              `json:"match_score"`
	MatchReasons       []entity.MatchReason `json:"match_reasons"`
	Dismissed          bool                 `json:"dismissed"`
}

// NewWatchListMatchResponse converts an entity into its API representation.
func NewWatchListMatchResponse(m *entity.WatchListMatch) *WatchListMatchResponse {
	reasons := []entity.MatchReason{}
	if len(m.MatchReasons) > 0 {
		_ = json.Unmarshal(m.MatchReasons, &reasons)
	}
	return &WatchListMatchResponse{
		ID:                 m.ID,
		WatchListID:        m.WatchListID,
		RegulatoryUpdateID: m.RegulatoryUpdateID,
		MatchScore:         m.MatchScore,
		MatchReasons:       reasons,
		Dismissed:          m.Dismissed,
	}
}
