package scoring

import (
	"testing"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestProfileRelevanceAllSignals(t *testing.T) {
	profile := &entity.FirmProfile{
		FirmType:      entity.FirmTypeBank,
		Size:          entity.FirmSizeLarge,
		Sectors:       []string{"Banking", "Payments"},
		Jurisdictions: []string{"UK"},
	}
	update := &entity.RegulatoryUpdate{
		ApplicableSectors:   []string{"Banking"},
		ApplicableFirmTypes: []string{"bank", "building_society"},
		Jurisdiction:        "UK",
		MinimumFirmSize:     entity.FirmSizeMedium,
	}

	// All four signals match: (0.4+0.3+0.2+0.1) * default weighting 1.5, clamped.
	assert.Equal(t, 1.0, ProfileRelevance(profile, update))
}

func TestProfileRelevancePartialSignals(t *testing.T) {
	profile := &entity.FirmProfile{
		FirmType:      entity.FirmTypeFintech,
		Size:          entity.FirmSizeSmall,
		Sectors:       []string{"Payments"},
		Jurisdictions: []string{"UK"},
	}
	update := &entity.RegulatoryUpdate{
		ApplicableSectors: []string{"Payments"},
		Jurisdiction:      "EU",
		MinimumFirmSize:   entity.FirmSizeLarge,
	}

	// Only the sector signal matches: 0.4 * 1.5.
	assert.InDelta(t, 0.6, ProfileRelevance(profile, update), 1e-9)
}

func TestProfileRelevanceMissingFieldsAreNoMatch(t *testing.T) {
	profile := &entity.FirmProfile{
		FirmType: entity.FirmTypeBank,
		Size:     entity.FirmSizeSystemic,
		Sectors:  []string{"Banking"},
	}

	assert.Equal(t, 0.0, ProfileRelevance(profile, &entity.RegulatoryUpdate{}))
}

func TestProfileRelevanceSizeLadder(t *testing.T) {
	tests := []struct {
		firm    entity.FirmSize
		minimum entity.FirmSize
		match   bool
	}{
		{entity.FirmSizeMicro, entity.FirmSizeMicro, true},
		{entity.FirmSizeMicro, entity.FirmSizeSmall, false},
		{entity.FirmSizeSystemic, entity.FirmSizeLarge, true},
		{entity.FirmSizeMedium, entity.FirmSizeMedium, true},
		{entity.FirmSizeSmall, entity.FirmSizeSystemic, false},
		{entity.FirmSizeLarge, entity.FirmSize(""), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.match, sizeMatches(tt.firm, tt.minimum), "firm=%s minimum=%s", tt.firm, tt.minimum)
	}
}

func TestProfileRelevanceCustomSectorWeighting(t *testing.T) {
	profile := &entity.FirmProfile{
		FirmType:      entity.FirmTypeBank,
		Size:          entity.FirmSizeMedium,
		Sectors:       []string{"Banking"},
		AIPreferences: []byte(`{"sector_weighting": 2.0}`),
	}
	update := &entity.RegulatoryUpdate{ApplicableSectors: []string{"Banking"}}

	// 0.4 * 2.0 = 0.8, still inside the clamp.
	assert.InDelta(t, 0.8, ProfileRelevance(profile, update), 1e-9)
}
