package entity

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Urgency tiers assigned to an update during enrichment.
const (
	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"
)

// Impact levels assigned to an update during enrichment.
const (
	ImpactSignificant   = "Significant"
	ImpactModerate      = "Moderate"
	ImpactInformational = "Informational"
)

// RegulatoryUpdate represents one ingested regulatory publication after
// normalization and AI enrichment. The scoring engine reads it, never
// mutates it.
type RegulatoryUpdate struct {
	ID                    uint           `gorm:"primaryKey" json:"id"`
	Headline              string         `gorm:"not null" json:"headline"`
	Impact                string         `json:"impact"`
	Summary               string         `json:"summary"`
	AISummary             string         `json:"ai_summary"`
	Authority             string         `gorm:"index" json:"authority"`
	Sector                string         `json:"sector"`
	Urgency               string         `gorm:"index" json:"urgency"`
	ImpactLevel           string         `json:"impact_level"`
	SectorRelevanceScores datatypes.JSON `gorm:"type:jsonb" json:"sector_relevance_scores"`
	ApplicableSectors     pq.StringArray `gorm:"type:text[]" json:"applicable_sectors"`
	ApplicableFirmTypes   pq.StringArray `gorm:"type:text[]" json:"applicable_firm_types"`
	Jurisdiction          string         `json:"jurisdiction"`
	MinimumFirmSize       FirmSize       `json:"minimum_firm_size"`
	KeyDates              string         `json:"key_dates"`
	ComplianceDeadline    *time.Time     `json:"compliance_deadline,omitempty"`
	AIConfidence          float64        `json:"ai_confidence"`
	BusinessImpactScore   float64        `json:"business_impact_score"`
	URL                   string         `gorm:"unique;not null" json:"url"`
	HashIdentifier        string         `gorm:"unique;not null" json:"hash_identifier"`
	PublishedAt           *time.Time     `json:"published_at,omitempty"`
	FetchedAt             time.Time      `json:"fetched_at"`
	CreatedAt             time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the RegulatoryUpdate model.
func (RegulatoryUpdate) TableName() string {
	return "regulatory_updates"
}

// SectorScores decodes the per-sector relevance score map. A missing or
// malformed column yields an empty map, never an error.
func (u *RegulatoryUpdate) SectorScores() map[string]float64 {
	scores := map[string]float64{}
	if len(u.SectorRelevanceScores) == 0 {
		return scores
	}
	if err := json.Unmarshal(u.SectorRelevanceScores, &scores); err != nil {
		return map[string]float64{}
	}
	return scores
}
