package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// FirmType enumerates the kinds of regulated firms a profile can describe.
type FirmType string

const (
	FirmTypeBank            FirmType = "bank"
	FirmTypeBuildingSociety FirmType = "building_society"
	FirmTypeInsurer         FirmType = "insurer"
	FirmTypeInvestmentFirm  FirmType = "investment_firm"
	FirmTypePaymentService  FirmType = "payment_service"
	FirmTypeEMoney          FirmType = "e_money"
	FirmTypeCreditUnion     FirmType = "credit_union"
	FirmTypeFintech         FirmType = "fintech"
	FirmTypeOther           FirmType = "other"
)

// FirmSize enumerates firm sizes on an ordinal ladder.
type FirmSize string

const (
	FirmSizeMicro    FirmSize = "micro"
	FirmSizeSmall    FirmSize = "small"
	FirmSizeMedium   FirmSize = "medium"
	FirmSizeLarge    FirmSize = "large"
	FirmSizeSystemic FirmSize = "systemic"
)

// firmSizeOrdinal fixes the ladder micro < small < medium < large < systemic.
var firmSizeOrdinal = map[FirmSize]int{
	FirmSizeMicro:    0,
	FirmSizeSmall:    1,
	FirmSizeMedium:   2,
	FirmSizeLarge:    3,
	FirmSizeSystemic: 4,
}

// Ordinal returns the position of the size on the fixed ladder, or -1 when
// the size is unknown.
func (s FirmSize) Ordinal() int {
	if ord, ok := firmSizeOrdinal[s]; ok {
		return ord
	}
	return -1
}

// RiskAppetite enumerates a firm's stated appetite for regulatory risk.
type RiskAppetite string

const (
	RiskAppetiteVeryLow  RiskAppetite = "very_low"
	RiskAppetiteLow      RiskAppetite = "low"
	RiskAppetiteModerate RiskAppetite = "moderate"
	RiskAppetiteHigh     RiskAppetite = "high"
	RiskAppetiteVeryHigh RiskAppetite = "very_high"
)

// Posture collapses the five appetite levels onto the three scoring rows.
func (a RiskAppetite) Posture() string {
	switch a {
	case RiskAppetiteVeryLow, RiskAppetiteLow:
		return "conservative"
	case RiskAppetiteHigh, RiskAppetiteVeryHigh:
		return "aggressive"
	default:
		return "moderate"
	}
}

// AIAnalysisPreferences is the per-firm tuning bundle for personalized scoring.
type AIAnalysisPreferences struct {
	RelevanceThreshold   float64  `json:"relevance_threshold"`
	UrgencyWeighting     float64  `json:"urgency_weighting"`
	SectorWeighting      float64  `json:"sector_weighting"`
	DeadlineAlertDays    []int    `json:"deadline_alert_days"`
	NotificationChannels []string `json:"notification_channels"`
}

// DefaultAIAnalysisPreferences returns the preference bundle applied to new
// profiles and to profiles persisted without one.
func DefaultAIAnalysisPreferences() AIAnalysisPreferences {
	return AIAnalysisPreferences{
		RelevanceThreshold:   20,
		UrgencyWeighting:     1.0,
		SectorWeighting:      1.5,
		DeadlineAlertDays:    []int{1, 7, 30},
		NotificationChannels: []string{"dashboard"},
	}
}

// FirmProfile represents a subscriber's regulatory-risk fingerprint.
type FirmProfile struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	UserID             string         `gorm:"not null;index" json:"user_id"`
	Name               string         `gorm:"not null" json:"name"`
	FirmType           FirmType       `gorm:"not null" json:"firm_type"`
	Size               FirmSize       `gorm:"not null" json:"size"`
	Sectors            pq.StringArray `gorm:"type:text[]" json:"sectors"`
	Jurisdictions      pq.StringArray `gorm:"type:text[]" json:"jurisdictions"`
	RiskAppetite       RiskAppetite   `gorm:"not null" json:"risk_appetite"`
	ComplianceMaturity int            `json:"compliance_maturity"`
	BusinessModel      string         `json:"business_model"`
	FocusAreas         pq.StringArray `gorm:"type:text[]" json:"focus_areas"`
	AIPreferences      datatypes.JSON `gorm:"type:jsonb" json:"ai_preferences"`
	IsActive           bool           `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the FirmProfile model.
func (FirmProfile) TableName() string {
	return "firm_profiles"
}

var validFirmTypes = map[FirmType]bool{
	FirmTypeBank: true, FirmTypeBuildingSociety: true, FirmTypeInsurer: true,
	FirmTypeInvestmentFirm: true, FirmTypePaymentService: true, FirmTypeEMoney: true,
	FirmTypeCreditUnion: true, FirmTypeFintech: true, FirmTypeOther: true,
}

var validRiskAppetites = map[RiskAppetite]bool{
	RiskAppetiteVeryLow: true, RiskAppetiteLow: true, RiskAppetiteModerate: true,
	RiskAppetiteHigh: true, RiskAppetiteVeryHigh: true,
}

// Validate checks the enumerated fields and value ranges. It is called at
// profile-save time; the scoring engine assumes an already valid profile.
func (p *FirmProfile) Validate() error {
	if !validFirmTypes[p.FirmType] {
		return fmt.Errorf("invalid firm type: %q", p.FirmType)
	}
	if p.Size.Ordinal() < 0 {
		return fmt.Errorf("invalid firm size: %q", p.Size)
	}
	if !validRiskAppetites[p.RiskAppetite] {
		return fmt.Errorf("invalid risk appetite: %q", p.RiskAppetite)
	}
	if p.ComplianceMaturity < 0 || p.ComplianceMaturity > 100 {
		return fmt.Errorf("compliance maturity must be between 0 and 100, got %d", p.ComplianceMaturity)
	}
	return nil
}

// Preferences decodes the AI preference bundle, falling back to defaults for
// missing or malformed values.
func (p *FirmProfile) Preferences() AIAnalysisPreferences {
	prefs := DefaultAIAnalysisPreferences()
	if len(p.AIPreferences) == 0 {
		return prefs
	}
	if err := json.Unmarshal(p.AIPreferences, &prefs); err != nil {
		return DefaultAIAnalysisPreferences()
	}
	if prefs.SectorWeighting <= 0 {
		prefs.SectorWeighting = DefaultAIAnalysisPreferences().SectorWeighting
	}
	return prefs
}
