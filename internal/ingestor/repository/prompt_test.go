package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAnalyzeUpdatePromptScales(t *testing.T) {
	prompt := BuildAnalyzeUpdatePrompt("FCA", "New rules", "2026-08-01", "Banks must act.")

	assert.Contains(t, prompt, "FCA")
	assert.Contains(t, prompt, "New rules")
	// sector relevance is requested on the same 0-100 scale the relevance
	// scorer weights, business impact on the 0-10 urgency input scale
	assert.Contains(t, prompt, `"sector_relevance_scores": {"<sector>": <float 0-100>}`)
	assert.Contains(t, prompt, `"business_impact_score": <float 0.0-10.0>`)
}
