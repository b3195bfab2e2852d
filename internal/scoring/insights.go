package scoring

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
)

// IntelligenceBundle is the full personalized output returned to the
// dashboard for one firm profile.
type IntelligenceBundle struct {
	RelevantUpdates    []ScoredUpdate      `json:"relevant_updates"`
	PriorityScore      int                 `json:"priority_score"`
	ComplianceActions  []ComplianceAction  `json:"compliance_actions"`
	RiskAssessment     []RiskCategoryScore `json:"risk_assessment"`
	Recommendations    []Recommendation    `json:"recommendations"`
	FirmSpecificTrends TrendAnalysis       `json:"firm_specific_trends"`
	RelevanceStats     RelevanceStats      `json:"relevance_stats"`
}

// ComplianceAction is a suggested follow-up derived from a high-priority
// update.
type ComplianceAction struct {
	UpdateID uint     `json:"update_id"`
	Title    string   `json:"title"`
	Headline string   `json:"headline"`
	Priority Priority `json:"priority"`
	Deadline string   `json:"deadline,omitempty"`
}

// RiskCategoryScore aggregates relevance mass into one of the five fixed
// risk categories.
type RiskCategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Level    string  `json:"level"`
}

// Recommendation is a strategic suggestion derived from the scored batch.
type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TrendAnalysis summarises the last 30 days of relevant updates.
type TrendAnalysis struct {
	UpdateCount      int     `json:"update_count"`
	AverageRelevance float64 `json:"average_relevance"`
	Trend            string  `json:"trend"`
	TopSector        string  `json:"top_sector,omitempty"`
}

// RelevanceStats describes the scoring pass itself.
type RelevanceStats struct {
	TotalEvaluated int     `json:"total_evaluated"`
	Relevant       int     `json:"relevant"`
	AverageScore   float64 `json:"average_score"`
	HighestScore   int     `json:"highest_score"`
}

const (
	complianceActionWindow = 10
	complianceActionCap    = 8
	trendWindow            = 30 * 24 * time.Hour
)

// deadlineRe extracts dates like "30 September 2026" from headline and key
// dates text.
var deadlineRe = regexp.MustCompile(`(\d{1,2})\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{4})`)

// PriorityScore is the dashboard summary number: capped weighted count of
// critical and high priority updates.
func PriorityScore(scored []ScoredUpdate) int {
	critical, high := 0, 0
	for _, s := range scored {
		switch s.PersonalizedPriority {
		case PriorityCritical:
			critical++
		case PriorityHigh:
			high++
		}
	}
	score := critical*20 + high*10
	if score > 100 {
		score = 100
	}
	return score
}

// ComplianceActions derives actionable follow-ups from the top of the scored
// list: only Critical/High priority updates among the first ten survivors,
// capped at eight actions.
func ComplianceActions(scored []ScoredUpdate) []ComplianceAction {
	window := scored
	if len(window) > complianceActionWindow {
		window = window[:complianceActionWindow]
	}

	actions := []ComplianceAction{}
	for _, s := range window {
		if s.PersonalizedPriority != PriorityCritical && s.PersonalizedPriority != PriorityHigh {
			continue
		}
		actions = append(actions, ComplianceAction{
			UpdateID: s.Update.ID,
			Title:    actionTitle(s.Update.Headline),
			Headline: s.Update.Headline,
			Priority: s.PersonalizedPriority,
			Deadline: extractDeadline(s.Update.Headline + " " + s.Update.KeyDates),
		})
		if len(actions) == complianceActionCap {
			break
		}
	}
	return actions
}

func actionTitle(headline string) string {
	lower := strings.ToLower(headline)
	for _, t := range complianceActionTitles {
		if strings.Contains(lower, t.Substring) {
			return t.Title
		}
	}
	return defaultComplianceActionTitle
}

func extractDeadline(text string) string {
	return deadlineRe.FindString(text)
}

// RiskAssessment buckets every surviving update's relevance into the five
// fixed risk categories by keyword presence; an update can feed several
// categories. Raw sums classify High above 500 and Medium above 200, and the
// displayed score is the raw sum divided by ten.
func RiskAssessment(scored []ScoredUpdate) []RiskCategoryScore {
	sums := map[string]float64{}
	for _, s := range scored {
		text := strings.ToLower(s.Update.Headline + " " + s.Update.Impact)
		for category, keywords := range riskCategoryKeywords {
			if countKeywords(text, keywords) > 0 {
				sums[category] += float64(s.RelevanceScore)
			}
		}
	}

	assessment := make([]RiskCategoryScore, 0, len(riskCategoryOrder))
	for _, category := range riskCategoryOrder {
		raw := sums[category]
		level := "Low"
		switch {
		case raw > 500:
			level = "High"
		case raw > 200:
			level = "Medium"
		}
		assessment = append(assessment, RiskCategoryScore{
			Category: category,
			Score:    raw / 10,
			Level:    level,
		})
	}

	sort.SliceStable(assessment, func(i, j int) bool {
		return assessment[i].Score > assessment[j].Score
	})
	return assessment
}

// Recommendations emits an immediate-action recommendation when criticals
// pile up and a strategic-focus recommendation when one focus area dominates
// the relevance factors.
func Recommendations(scored []ScoredUpdate) []Recommendation {
	recs := []Recommendation{}

	critical := 0
	focusCounts := map[string]int{}
	for _, s := range scored {
		if s.PersonalizedPriority == PriorityCritical {
			critical++
		}
		for _, factor := range s.RelevanceFactors {
			if area, ok := strings.CutPrefix(factor, "Relates to "); ok {
				focusCounts[area]++
			}
		}
	}

	if critical > 3 {
		recs = append(recs, Recommendation{
			Type:        "Immediate Action",
			Title:       "Address critical regulatory changes",
			Description: fmt.Sprintf("%d updates require immediate attention based on your firm profile", critical),
		})
	}

	topArea, topCount := "", 0
	for area, count := range focusCounts {
		if count > topCount || (count == topCount && area < topArea) {
			topArea, topCount = area, count
		}
	}
	if topCount > 2 {
		recs = append(recs, Recommendation{
			Type:        "Strategic Focus",
			Title:       fmt.Sprintf("Increased activity in %s", topArea),
			Description: fmt.Sprintf("%d recent updates relate to %s; consider a thematic review", topCount, topArea),
		})
	}

	return recs
}

// Trends analyses the updates fetched within the last 30 days of now.
func Trends(profile *entity.FirmProfile, scored []ScoredUpdate, now time.Time) TrendAnalysis {
	cutoff := now.Add(-trendWindow)

	var (
		count       int
		totalScore  int
		sectorSums  = map[string]float64{}
		firmSectors = profile.Sectors
	)
	for _, s := range scored {
		if s.Update.FetchedAt.Before(cutoff) {
			continue
		}
		count++
		totalScore += s.RelevanceScore
		scores := s.Update.SectorScores()
		for _, sector := range firmSectors {
			sectorSums[sector] += scores[sector]
		}
	}

	analysis := TrendAnalysis{UpdateCount: count, Trend: "decreasing"}
	if count > 0 {
		analysis.AverageRelevance = float64(totalScore) / float64(count)
	}
	switch {
	case count > 10:
		analysis.Trend = "increasing"
	case count > 5:
		analysis.Trend = "stable"
	}

	topSector, topSum := "", 0.0
	for sector, sum := range sectorSums {
		if sum > topSum || (sum == topSum && sum > 0 && sector < topSector) {
			topSector, topSum = sector, sum
		}
	}
	analysis.TopSector = topSector

	return analysis
}

// BuildIntelligence runs the full scoring pass for one firm profile over a
// batch of updates and assembles the dashboard bundle.
func BuildIntelligence(profile *entity.FirmProfile, updates []entity.RegulatoryUpdate, now time.Time) IntelligenceBundle {
	scored := ScoreUpdates(profile, updates)

	stats := RelevanceStats{
		TotalEvaluated: len(updates),
		Relevant:       len(scored),
	}
	if len(scored) > 0 {
		total := 0
		for _, s := range scored {
			total += s.RelevanceScore
		}
		stats.AverageScore = float64(total) / float64(len(scored))
		stats.HighestScore = scored[0].RelevanceScore
	}

	return IntelligenceBundle{
		RelevantUpdates:    scored,
		PriorityScore:      PriorityScore(scored),
		ComplianceActions:  ComplianceActions(scored),
		RiskAssessment:     RiskAssessment(scored),
		Recommendations:    Recommendations(scored),
		FirmSpecificTrends: Trends(profile, scored, now),
		RelevanceStats:     stats,
	}
}
