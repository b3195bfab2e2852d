package scoring

import (
	"testing"

	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchWatchListKeywordsAndAuthority(t *testing.T) {
	list := &entity.WatchList{
		Keywords:    []string{"consultation", "capital"},
		Authorities: []string{"FCA"},
	}
	update := &entity.RegulatoryUpdate{
		Headline:  "FCA capital requirements consultation",
		Authority: "FCA",
	}

	score, reasons := MatchWatchList(list, update)

	// 0.4 * 2/2 keywords + 0.3 authority.
	assert.InDelta(t, 0.7, score, 1e-9)
	require.Len(t, reasons, 2)
	assert.Equal(t, "keyword", reasons[0].Type)
	assert.ElementsMatch(t, []string{"consultation", "capital"}, reasons[0].Matched)
	assert.Equal(t, "authority", reasons[1].Type)
}

func TestMatchWatchListScoreNeverExceedsOne(t *testing.T) {
	list := &entity.WatchList{
		Keywords:    []string{"capital"},
		Authorities: []string{"FCA"},
		Sectors:     []string{"Banking"},
	}
	update := &entity.RegulatoryUpdate{
		Headline:  "capital rules",
		Authority: "FCA",
		Sector:    "Banking",
	}

	score, _ := MatchWatchList(list, update)
	assert.LessOrEqual(t, score, 1.0)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestMatchWatchListPartialKeywordFraction(t *testing.T) {
	list := &entity.WatchList{
		Keywords: []string{"consultation", "capital", "liquidity", "basel"},
	}
	update := &entity.RegulatoryUpdate{
		Headline:  "PRA consultation",
		AISummary: "covers liquidity coverage ratios",
	}

	score, reasons := MatchWatchList(list, update)

	// 0.4 * 2/4 matched keywords.
	assert.InDelta(t, 0.2, score, 1e-9)
	require.Len(t, reasons, 1)
	assert.ElementsMatch(t, []string{"consultation", "liquidity"}, reasons[0].Matched)
}

func TestMatchWatchListNoMatch(t *testing.T) {
	list := &entity.WatchList{
		Keywords:    []string{"crypto"},
		Authorities: []string{"ICO"},
		Sectors:     []string{"Insurance"},
	}
	update := &entity.RegulatoryUpdate{
		Headline:  "PRA statement on leverage",
		Authority: "PRA",
		Sector:    "Banking",
	}

	score, reasons := MatchWatchList(list, update)
	assert.Zero(t, score)
	assert.Empty(t, reasons)
}

func TestMatchWatchListAuthoritySubstringIsCaseInsensitive(t *testing.T) {
	list := &entity.WatchList{Authorities: []string{"bank of england"}}
	update := &entity.RegulatoryUpdate{Authority: "Bank of England / PRA"}

	score, reasons := MatchWatchList(list, update)
	assert.InDelta(t, 0.3, score, 1e-9)
	require.Len(t, reasons, 1)
	assert.Equal(t, "authority", reasons[0].Type)
}
