package scoring

import (
	"fmt"
	"testing"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredWithPriority(priorities ...Priority) []ScoredUpdate {
	scored := make([]ScoredUpdate, 0, len(priorities))
	for i, p := range priorities {
		scored = append(scored, ScoredUpdate{
			Update:         entity.RegulatoryUpdate{ID: uint(i + 1), Headline: fmt.Sprintf("update %d", i+1)},
			RelevanceScore: 50,

			PersonalizedPriority: p,
		})
	}
	return scored
}

func TestPriorityScoreIsClamped(t *testing.T) {
	assert.Equal(t, 0, PriorityScore(nil))
	assert.Equal(t, 50, PriorityScore(scoredWithPriority(
		PriorityCritical, PriorityCritical, PriorityHigh, PriorityLow,
	)))

	many := scoredWithPriority()
	for i := 0; i < 20; i++ {
		many = append(many, scoredWithPriority(PriorityCritical)...)
	}
	assert.Equal(t, 100, PriorityScore(many))
}

func TestComplianceActionsTitlesAndDeadlines(t *testing.T) {
	scored := []ScoredUpdate{
		{
			Update: entity.RegulatoryUpdate{
				ID:       1,
				Headline: "FCA consultation on overdraft pricing",
				KeyDates: "Responses due by 30 September 2026",
			},
			RelevanceScore:       90,
			PersonalizedPriority: PriorityCritical,
		},
		{
			Update:               entity.RegulatoryUpdate{ID: 2, Headline: "New guidance for payment firms"},
			RelevanceScore:       70,
			PersonalizedPriority: PriorityHigh,
		},
		{
			Update:               entity.RegulatoryUpdate{ID: 3, Headline: "Quarterly reporting changes"},
			RelevanceScore:       60,
			PersonalizedPriority: PriorityHigh,
		},
		{
			Update:               entity.RegulatoryUpdate{ID: 4, Headline: "Speech by the chief executive"},
			RelevanceScore:       50,
			PersonalizedPriority: PriorityMedium,
		},
	}

	actions := ComplianceActions(scored)

	require.Len(t, actions, 3, "medium priority updates are excluded")
	assert.Equal(t, "Review and respond to consultation", actions[0].Title)
	assert.Equal(t, "30 September 2026", actions[0].Deadline)
	assert.Equal(t, "Implement new guidance", actions[1].Title)
	assert.Equal(t, "Update reporting procedures", actions[2].Title)
}

func TestComplianceActionsWindowAndCap(t *testing.T) {
	scored := []ScoredUpdate{}
	for i := 0; i < 15; i++ {
		scored = append(scored, ScoredUpdate{
			Update:               entity.RegulatoryUpdate{ID: uint(i + 1), Headline: "deadline approaching"},
			RelevanceScore:       100 - i,
			PersonalizedPriority: PriorityCritical,
		})
	}

	actions := ComplianceActions(scored)

	// Only the first ten survivors are considered and at most eight emitted.
	require.Len(t, actions, 8)
	assert.Equal(t, uint(1), actions[0].UpdateID)
	assert.Equal(t, "Meet compliance deadline", actions[0].Title)
}

func TestRiskAssessmentBucketsAndLevels(t *testing.T) {
	scored := []ScoredUpdate{}
	for i := 0; i < 6; i++ {
		scored = append(scored, ScoredUpdate{
			Update:         entity.RegulatoryUpdate{Headline: "operational resilience requirements"},
			RelevanceScore: 100,
		})
	}
	scored = append(scored, ScoredUpdate{
		Update:         entity.RegulatoryUpdate{Headline: "capital buffers review"},
		RelevanceScore: 250,
	})

	assessment := RiskAssessment(scored)

	require.Len(t, assessment, 5)
	byCategory := map[string]RiskCategoryScore{}
	for _, a := range assessment {
		byCategory[a.Category] = a
	}

	// 6 * 100 raw in both operational ("operational") and compliance
	// ("requirement") buckets.
	assert.Equal(t, "High", byCategory["Operational Risk"].Level)
	assert.InDelta(t, 60.0, byCategory["Operational Risk"].Score, 1e-9)
	assert.Equal(t, "High", byCategory["Compliance Risk"].Level)
	assert.Equal(t, "Medium", byCategory["Financial Risk"].Level)
	assert.InDelta(t, 25.0, byCategory["Financial Risk"].Score, 1e-9)
	assert.Equal(t, "Low", byCategory["Strategic Risk"].Level)

	for i := 1; i < len(assessment); i++ {
		assert.GreaterOrEqual(t, assessment[i-1].Score, assessment[i].Score)
	}
}

func TestRecommendations(t *testing.T) {
	scored := scoredWithPriority(PriorityCritical, PriorityCritical, PriorityCritical, PriorityCritical)
	for i := range scored {
		scored[i].RelevanceFactors = []string{"Relates to Consumer Protection"}
	}

	recs := Recommendations(scored)

	require.Len(t, recs, 2)
	assert.Equal(t, "Immediate Action", recs[0].Type)
	assert.Equal(t, "Strategic Focus", recs[1].Type)
	assert.Contains(t, recs[1].Title, "Consumer Protection")
}

func TestRecommendationsQuietBatch(t *testing.T) {
	assert.Empty(t, Recommendations(scoredWithPriority(PriorityLow, PriorityMedium)))
}

func TestTrendsWindowAndTopSector(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	profile := &entity.FirmProfile{Sectors: []string{"Banking", "Payments"}}

	scored := []ScoredUpdate{}
	for i := 0; i < 7; i++ {
		scored = append(scored, ScoredUpdate{
			Update: entity.RegulatoryUpdate{
				FetchedAt:             now.AddDate(0, 0, -i),
				SectorRelevanceScores: []byte(`{"Banking": 40, "Payments": 10}`),
			},
			RelevanceScore: 60,
		})
	}
	// Outside the 30-day window, must be ignored.
	scored = append(scored, ScoredUpdate{
		Update:         entity.RegulatoryUpdate{FetchedAt: now.AddDate(0, 0, -45)},
		RelevanceScore: 500,
	})

	trends := Trends(profile, scored, now)

	assert.Equal(t, 7, trends.UpdateCount)
	assert.InDelta(t, 60.0, trends.AverageRelevance, 1e-9)
	assert.Equal(t, "stable", trends.Trend)
	assert.Equal(t, "Banking", trends.TopSector)
}

func TestBuildIntelligenceBundle(t *testing.T) {
	now := time.Now()
	profile := &entity.FirmProfile{
		Sectors:      []string{"Banking"},
		FocusAreas:   []string{"Consumer Protection"},
		RiskAppetite: entity.RiskAppetiteModerate,
		Size:         entity.FirmSizeMedium,
	}
	updates := []entity.RegulatoryUpdate{
		{
			ID:                    1,
			Headline:              "FCA consumer protection consultation on vulnerable customers",
			Impact:                "firms must review complaints handling",
			Urgency:               entity.UrgencyHigh,
			ImpactLevel:           entity.ImpactSignificant,
			SectorRelevanceScores: []byte(`{"Banking": 40}`),
			FetchedAt:             now,
		},
		{ID: 2, Headline: "routine notice", FetchedAt: now},
	}

	bundle := BuildIntelligence(profile, updates, now)

	require.Len(t, bundle.RelevantUpdates, 1)
	assert.Equal(t, uint(1), bundle.RelevantUpdates[0].Update.ID)
	assert.Equal(t, 2, bundle.RelevanceStats.TotalEvaluated)
	assert.Equal(t, 1, bundle.RelevanceStats.Relevant)
	assert.Equal(t, bundle.RelevantUpdates[0].RelevanceScore, bundle.RelevanceStats.HighestScore)
	assert.GreaterOrEqual(t, bundle.PriorityScore, 0)
	assert.LessOrEqual(t, bundle.PriorityScore, 100)
	assert.Len(t, bundle.RiskAssessment, 5)
	assert.NotEmpty(t, bundle.ComplianceActions)
}
