package scoring

import (
	"math"
	"time"
)

// UrgencyFactors bundles the contextual signals behind an alert urgency
// score.
type UrgencyFactors struct {
	// DaysToDeadline is nil when the update carries no compliance deadline.
	DaysToDeadline *int
	// BusinessImpactScore is on a 0-10 scale.
	BusinessImpactScore float64
	// FirmRelevance is the profile relevance contribution in [0,1].
	FirmRelevance float64
	// AIConfidence is the enrichment confidence in [0,1].
	AIConfidence float64
	Authority    string
}

const urgencyBase = 50

// UrgencyScore maps the factor bundle onto a 0-100 urgency value. The
// result is clamped, so out-of-range inputs still produce a valid score.
func UrgencyScore(f UrgencyFactors) int {
	score := float64(urgencyBase)

	if f.DaysToDeadline != nil {
		switch days := *f.DaysToDeadline; {
		case days <= 1:
			score += 40
		case days <= 7:
			score += 30
		case days <= 30:
			score += 20
		case days <= 90:
			score += 10
		}
	}

	score += math.Round(f.BusinessImpactScore * 2.5)
	score += math.Round(f.FirmRelevance * 20)
	score += math.Round(f.AIConfidence * 15)
	score += float64(authorityWeight(f.Authority))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}

func authorityWeight(authority string) int {
	if w, ok := authorityImportance[authority]; ok {
		return w
	}
	return defaultAuthorityImportance
}

// escalationUnreadAge is how long an alert may stay unread before it
// escalates regardless of score.
const escalationUnreadAge = 24 * time.Hour

// ShouldEscalate is the escalation gate consumed by the notification
// dispatcher. It is independent of the urgency score formula.
func ShouldEscalate(severity string, urgencyScore int, daysToDeadline *int, unreadFor time.Duration) bool {
	if severity == "critical" {
		return true
	}
	if urgencyScore >= 80 {
		return true
	}
	if daysToDeadline != nil && *daysToDeadline <= 7 {
		return true
	}
	return unreadFor >= escalationUnreadAge
}
