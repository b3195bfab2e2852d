package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Alert severities.
const (
	AlertSeverityInfo     = "info"
	AlertSeverityWarning  = "warning"
	AlertSeverityUrgent   = "urgent"
	AlertSeverityCritical = "critical"
)

// RegulatoryAlert is a firm-relevant event raised against an ingested update,
// carrying the computed urgency score and suggested actions.
type RegulatoryAlert struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	FirmProfileID      uint           `gorm:"not null;index" json:"firm_profile_id"`
	RegulatoryUpdateID uint           `gorm:"not null;index" json:"regulatory_update_id"`
	Severity           string         `gorm:"not null" json:"severity"`
	UrgencyScore       int            `gorm:"not null" json:"urgency_score"`
	BusinessContext    datatypes.JSON `gorm:"type:jsonb" json:"business_context"`
	SuggestedActions   datatypes.JSON `gorm:"type:jsonb" json:"suggested_actions"`
	ReadAt             *time.Time     `json:"read_at,omitempty"`
	EscalatedAt        *time.Time     `json:"escalated_at,omitempty"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the RegulatoryAlert model.
func (RegulatoryAlert) TableName() string {
	return "regulatory_alerts"
}
