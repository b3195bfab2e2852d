package scoring

import (
	"encoding/json"
	"testing"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectorScoresJSON(t *testing.T, scores map[string]float64) []byte {
	t.Helper()
	b, err := json.Marshal(scores)
	require.NoError(t, err)
	return b
}

func TestScoreUpdateBankingConsultation(t *testing.T) {
	profile := &entity.FirmProfile{
		Sectors:       []string{"Banking"},
		FocusAreas:    []string{"Consumer Protection"},
		RiskAppetite:  entity.RiskAppetiteModerate,
		Size:          entity.FirmSizeMedium,
		BusinessModel: "",
	}
	update := &entity.RegulatoryUpdate{
		Headline:              "FCA consumer protection consultation on vulnerable customers",
		Impact:                "medium-sized firms must review complaints handling",
		Urgency:               entity.UrgencyHigh,
		ImpactLevel:           entity.ImpactSignificant,
		SectorRelevanceScores: sectorScoresJSON(t, map[string]float64{"Banking": 40}),
	}

	score, factors := ScoreUpdate(profile, update)

	// 40*0.4 sector + 4 focus keywords * 15 + moderate/High 20 + one size keyword * 12
	assert.Equal(t, 108, score)
	assert.Contains(t, factors, "High relevance to Banking")
	assert.Contains(t, factors, "Relates to Consumer Protection")

	assert.Equal(t, PriorityCritical, PriorityFor(score, update.Urgency, update.ImpactLevel))
}

func TestScoreUpdateEmptyUpdateStaysBelowCutoff(t *testing.T) {
	profile := &entity.FirmProfile{
		Sectors:      []string{"Insurance"},
		FocusAreas:   []string{"Capital Requirements"},
		RiskAppetite: entity.RiskAppetiteModerate,
		Size:         entity.FirmSizeSmall,
	}
	update := &entity.RegulatoryUpdate{}

	score, factors := ScoreUpdate(profile, update)

	// Only the unconditional risk-appetite fallback contributes.
	assert.Equal(t, 10, score)
	assert.Empty(t, factors)

	scored := ScoreUpdates(profile, []entity.RegulatoryUpdate{*update})
	assert.Empty(t, scored, "updates at or below the cutoff must be excluded")
}

func TestScoreUpdatesFiltersAndSortsDescending(t *testing.T) {
	profile := &entity.FirmProfile{
		Sectors:      []string{"Banking"},
		RiskAppetite: entity.RiskAppetiteModerate,
		Size:         entity.FirmSizeLarge,
	}
	updates := []entity.RegulatoryUpdate{
		{Headline: "minor notice", Urgency: entity.UrgencyLow},
		{
			Headline:              "capital rules for banks",
			Urgency:               entity.UrgencyHigh,
			SectorRelevanceScores: sectorScoresJSON(t, map[string]float64{"Banking": 80}),
		},
		{
			Headline:              "consultation on reporting",
			Urgency:               entity.UrgencyMedium,
			SectorRelevanceScores: sectorScoresJSON(t, map[string]float64{"Banking": 35}),
		},
	}

	scored := ScoreUpdates(profile, updates)

	require.Len(t, scored, 2)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].RelevanceScore, scored[i].RelevanceScore)
	}
	assert.Equal(t, "capital rules for banks", scored[0].Update.Headline)
	for _, s := range scored {
		assert.Greater(t, s.RelevanceScore, RelevanceCutoff)
	}
}

func TestPriorityForIsPureAndBucketsCorrectly(t *testing.T) {
	tests := []struct {
		name        string
		relevance   int
		urgency     string
		impactLevel string
		want        Priority
	}{
		{"critical via urgency and impact", 30, entity.UrgencyHigh, entity.ImpactSignificant, PriorityCritical},
		{"high band", 30, entity.UrgencyHigh, entity.ImpactModerate, PriorityHigh},
		{"medium band", 25, entity.UrgencyMedium, "", PriorityMedium},
		{"low band", 10, entity.UrgencyLow, "", PriorityLow},
		{"boundary eighty is critical", 25, entity.UrgencyHigh, entity.ImpactSignificant, PriorityCritical},
		{"unknown urgency adds nothing", 39, "whenever", "", PriorityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := PriorityFor(tt.relevance, tt.urgency, tt.impactLevel)
			second := PriorityFor(tt.relevance, tt.urgency, tt.impactLevel)
			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, second, "priority derivation must be deterministic")
		})
	}
}

func TestRiskAppetiteAlignment(t *testing.T) {
	tests := []struct {
		appetite entity.RiskAppetite
		urgency  string
		want     float64
	}{
		{entity.RiskAppetiteVeryLow, entity.UrgencyHigh, 25},
		{entity.RiskAppetiteLow, entity.UrgencyLow, 5},
		{entity.RiskAppetiteModerate, entity.UrgencyHigh, 20},
		{entity.RiskAppetiteModerate, entity.UrgencyMedium, 20},
		{entity.RiskAppetiteHigh, entity.UrgencyMedium, 25},
		{entity.RiskAppetiteVeryHigh, entity.UrgencyHigh, 15},
		{entity.RiskAppetiteModerate, "", 10},
		{entity.RiskAppetite("unset"), "", 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, riskAppetiteAlignment(tt.appetite, tt.urgency),
			"appetite=%s urgency=%q", tt.appetite, tt.urgency)
	}
}

func TestCountKeywordsCountsEachKeywordOnce(t *testing.T) {
	text := "capital capital capital basel"
	assert.Equal(t, 2, countKeywords(text, focusAreaKeywords["Capital Requirements"]))
}
