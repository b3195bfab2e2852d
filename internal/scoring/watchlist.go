package scoring

import (
	"strings"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
)

// Watch-list match contribution weights. Keyword fraction carries 0.4, the
// authority and sector signals are flat 0.3 each, and the total never
// exceeds 1.0.
const (
	watchListKeywordWeight   = 0.4
	watchListAuthorityWeight = 0.3
	watchListSectorWeight    = 0.3
)

// MatchWatchList scores one update against one watch list and explains the
// result. A zero score means no match should be persisted.
func MatchWatchList(list *entity.WatchList, update *entity.RegulatoryUpdate) (float64, []entity.MatchReason) {
	text := strings.ToLower(update.Headline + " " + update.Summary + " " + update.AISummary)
	score := 0.0
	reasons := []entity.MatchReason{}

	if len(list.Keywords) > 0 {
		matched := []string{}
		for _, kw := range list.Keywords {
			if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
		if len(matched) > 0 {
			score += watchListKeywordWeight * float64(len(matched)) / float64(len(list.Keywords))
			reasons = append(reasons, entity.MatchReason{Type: "keyword", Matched: matched})
		}
	}

	if matched := substringMatches(list.Authorities, update.Authority); len(matched) > 0 {
		score += watchListAuthorityWeight
		reasons = append(reasons, entity.MatchReason{Type: "authority", Matched: matched})
	}

	if matched := substringMatches(list.Sectors, update.Sector); len(matched) > 0 {
		score += watchListSectorWeight
		reasons = append(reasons, entity.MatchReason{Type: "sector", Matched: matched})
	}

	if score > 1.0 {
		score = 1.0
	}
	return score, reasons
}

// substringMatches returns the candidates that occur, case-insensitively, as
// substrings of the target.
func substringMatches(candidates []string, target string) []string {
	if target == "" {
		return nil
	}
	lower := strings.ToLower(target)
	matched := []string{}
	for _, c := range candidates {
		if c != "" && strings.Contains(lower, strings.ToLower(c)) {
			matched = append(matched, c)
		}
	}
	return matched
}
