package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
)

// Priority is the personalized priority tier of a scored update.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// ScoredUpdate is a regulatory update annotated with its personalized
// relevance. It is derived per request and never persisted.
type ScoredUpdate struct {
	Update               entity.RegulatoryUpdate `json:"update"`
	RelevanceScore       int                     `json:"relevance_score"`
	RelevanceFactors     []string                `json:"relevance_factors"`
	PersonalizedPriority Priority                `json:"personalized_priority"`
}

// ScoreUpdate computes the relevance score and human-readable factors for a
// single update against a firm profile. The score sums five contributions:
// per-sector relevance, focus-area keywords, business-model keywords, the
// risk-appetite matrix and firm-size keywords. It never fails; absent fields
// contribute zero.
func ScoreUpdate(profile *entity.FirmProfile, update *entity.RegulatoryUpdate) (int, []string) {
	text := strings.ToLower(update.Headline + " " + update.Impact)
	score := 0.0
	factors := []string{}

	// Per-sector relevance sums across the firm's sectors, so a firm with
	// several matching sectors can exceed single-sector maxima.
	sectorScores := update.SectorScores()
	for _, sector := range profile.Sectors {
		s := sectorScores[sector]
		score += s * sectorScoreWeight
		if s > highSectorRelevanceFloor {
			factors = append(factors, fmt.Sprintf("High relevance to %s", sector))
		}
	}

	for _, area := range profile.FocusAreas {
		matches := countKeywords(text, focusAreaKeywords[area])
		if matches > 0 {
			score += float64(matches) * focusAreaKeywordPoints
			factors = append(factors, fmt.Sprintf("Relates to %s", area))
		}
	}

	model := strings.ToLower(profile.BusinessModel)
	if modelMatches := countKeywords(text, businessModelKeywords[model]); modelMatches > 0 {
		contribution := float64(modelMatches) * businessModelPoints
		score += contribution
		if contribution > businessModelFactorFloor {
			factors = append(factors, fmt.Sprintf("Important for %s firms", model))
		}
	}

	score += riskAppetiteAlignment(profile.RiskAppetite, update.Urgency)

	if sizeMatchesCount := countKeywords(text, sizeKeywordsFor(profile.Size)); sizeMatchesCount > 0 {
		contribution := float64(sizeMatchesCount) * firmSizeKeywordPoints
		score += contribution
		if contribution > firmSizeFactorFloor {
			factors = append(factors, fmt.Sprintf("Particularly relevant for %s firms", profile.Size))
		}
	}

	return int(math.Round(score)), factors
}

// PriorityFor derives the personalized priority tier from the relevance
// score plus the update's own urgency and impact level. It is a pure
// function of its arguments.
func PriorityFor(relevanceScore int, urgency, impactLevel string) Priority {
	priority := float64(relevanceScore)

	switch urgency {
	case entity.UrgencyHigh:
		priority += 30
	case entity.UrgencyMedium:
		priority += 15
	}

	switch impactLevel {
	case entity.ImpactSignificant:
		priority += 25
	case entity.ImpactModerate:
		priority += 10
	}

	switch {
	case priority >= 80:
		return PriorityCritical
	case priority >= 60:
		return PriorityHigh
	case priority >= 40:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// ScoreUpdates scores a batch of updates against a firm profile, drops
// everything at or below the relevance cutoff and returns the survivors
// sorted by descending relevance.
func ScoreUpdates(profile *entity.FirmProfile, updates []entity.RegulatoryUpdate) []ScoredUpdate {
	scored := make([]ScoredUpdate, 0, len(updates))
	for i := range updates {
		update := updates[i]
		relevance, factors := ScoreUpdate(profile, &update)
		if relevance <= RelevanceCutoff {
			continue
		}
		scored = append(scored, ScoredUpdate{
			Update:               update,
			RelevanceScore:       relevance,
			RelevanceFactors:     factors,
			PersonalizedPriority: PriorityFor(relevance, update.Urgency, update.ImpactLevel),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	return scored
}

// riskAppetiteAlignment looks up the fixed (posture, urgency) points table.
// Unknown urgency tiers earn the flat fallback.
func riskAppetiteAlignment(appetite entity.RiskAppetite, urgency string) float64 {
	row, ok := riskAppetitePoints[appetite.Posture()]
	if !ok {
		row = riskAppetitePoints["moderate"]
	}
	if points, ok := row[urgency]; ok {
		return points
	}
	return unknownUrgencyPoints
}

// sizeKeywordsFor resolves the keyword row for a firm size, following the
// alias table for sizes without a dedicated row.
func sizeKeywordsFor(size entity.FirmSize) []string {
	key := string(size)
	if alias, ok := firmSizeKeywordAliases[key]; ok {
		key = alias
	}
	return firmSizeKeywords[key]
}

// countKeywords counts how many of the keywords occur in the lowercased
// text. Each keyword counts at most once.
func countKeywords(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}
