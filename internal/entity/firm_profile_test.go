package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProfile() FirmProfile {
	return FirmProfile{
		UserID:             "user-1",
		Name:               "Example Bank",
		FirmType:           FirmTypeBank,
		Size:               FirmSizeMedium,
		RiskAppetite:       RiskAppetiteModerate,
		ComplianceMaturity: 60,
	}
}

func TestFirmProfileValidate(t *testing.T) {
	p := validProfile()
	assert.NoError(t, p.Validate())

	badType := validProfile()
	badType.FirmType = "hedge_fund"
	assert.Error(t, badType.Validate())

	badSize := validProfile()
	badSize.Size = "gigantic"
	assert.Error(t, badSize.Validate())

	badAppetite := validProfile()
	badAppetite.RiskAppetite = "reckless"
	assert.Error(t, badAppetite.Validate())

	badMaturity := validProfile()
	badMaturity.ComplianceMaturity = 101
	assert.Error(t, badMaturity.Validate())
}

func TestFirmSizeOrdinalLadder(t *testing.T) {
	assert.Less(t, FirmSizeMicro.Ordinal(), FirmSizeSmall.Ordinal())
	assert.Less(t, FirmSizeSmall.Ordinal(), FirmSizeMedium.Ordinal())
	assert.Less(t, FirmSizeMedium.Ordinal(), FirmSizeLarge.Ordinal())
	assert.Less(t, FirmSizeLarge.Ordinal(), FirmSizeSystemic.Ordinal())
	assert.Equal(t, -1, FirmSize("unknown").Ordinal())
}

func TestRiskAppetitePosture(t *testing.T) {
	assert.Equal(t, "conservative", RiskAppetiteVeryLow.Posture())
	assert.Equal(t, "conservative", RiskAppetiteLow.Posture())
	assert.Equal(t, "moderate", RiskAppetiteModerate.Posture())
	assert.Equal(t, "aggressive", RiskAppetiteHigh.Posture())
	assert.Equal(t, "aggressive", RiskAppetiteVeryHigh.Posture())
}

func TestPreferencesDefaults(t *testing.T) {
	p := validProfile()
	prefs := p.Preferences()
	assert.Equal(t, 1.5, prefs.SectorWeighting)
	assert.Equal(t, float64(20), prefs.RelevanceThreshold)

	p.AIPreferences = []byte(`{"sector_weighting": 2.5, "relevance_threshold": 35}`)
	prefs = p.Preferences()
	assert.Equal(t, 2.5, prefs.SectorWeighting)
	assert.Equal(t, float64(35), prefs.RelevanceThreshold)

	p.AIPreferences = []byte(`not json`)
	assert.Equal(t, 1.5, p.Preferences().SectorWeighting)
}

func TestSectorScoresToleratesMalformedColumn(t *testing.T) {
	u := RegulatoryUpdate{}
	assert.Empty(t, u.SectorScores())

	u.SectorRelevanceScores = []byte(`{"Banking": 40.5}`)
	assert.Equal(t, 40.5, u.SectorScores()["Banking"])

	u.SectorRelevanceScores = []byte(`broken`)
	assert.Empty(t, u.SectorScores())
}
