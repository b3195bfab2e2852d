package scoring

import (
	"strings"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
)

// ProfileRelevance computes the contribution of a single update to a firm
// profile as a score in [0,1]. It is a weighted sum of four independent
// signals: sector overlap, applicable firm type, jurisdiction, and the
// minimum-size ladder. Missing update fields count as no match; the function
// is total over its input domain.
func ProfileRelevance(profile *entity.FirmProfile, update *entity.RegulatoryUpdate) float64 {
	score := 0.0

	if intersects(update.ApplicableSectors, profile.Sectors) {
		score += sectorMatchWeight
	}
	if containsFold(update.ApplicableFirmTypes, string(profile.FirmType)) {
		score += firmTypeMatchWeight
	}
	if update.Jurisdiction != "" && containsFold(profile.Jurisdictions, update.Jurisdiction) {
		score += jurisdictionMatchWeight
	}
	if sizeMatches(profile.Size, update.MinimumFirmSize) {
		score += sizeMatchWeight
	}

	score *= profile.Preferences().SectorWeighting
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// sizeMatches reports whether the firm sits at or above the update's minimum
// size on the fixed ordinal ladder. An update without a minimum size does
// not produce a match.
func sizeMatches(firmSize, minimumSize entity.FirmSize) bool {
	minOrd := minimumSize.Ordinal()
	if minOrd < 0 {
		return false
	}
	firmOrd := firmSize.Ordinal()
	return firmOrd >= 0 && firmOrd >= minOrd
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if containsFold(b, x) {
			return true
		}
	}
	return false
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
