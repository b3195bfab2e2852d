package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestUrgencyScoreComposition(t *testing.T) {
	tests := []struct {
		name    string
		factors UrgencyFactors
		want    int
	}{
		{
			name:    "base plus default authority",
			factors: UrgencyFactors{Authority: "Somewhere Else"},
			want:    55,
		},
		{
			name: "imminent deadline FCA",
			factors: UrgencyFactors{
				DaysToDeadline: intPtr(1),
				Authority:      "FCA",
			},
			want: 100,
		},
		{
			name: "week out with moderate signals",
			factors: UrgencyFactors{
				DaysToDeadline:      intPtr(7),
				BusinessImpactScore: 4,   // +10
				FirmRelevance:       0.5, // +10
				AIConfidence:        0.6, // +9
				Authority:           "FRC",
			},
			want: 100, // 50+30+10+10+9+6 clamped
		},
		{
			name: "distant deadline low signals",
			factors: UrgencyFactors{
				DaysToDeadline: intPtr(60),
				AIConfidence:   0.2,
				Authority:      "ICO",
			},
			want: 70, // 50+10+3+7
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UrgencyScore(tt.factors))
		})
	}
}

func TestUrgencyScoreClampsAdversarialInput(t *testing.T) {
	high := UrgencyScore(UrgencyFactors{
		DaysToDeadline:      intPtr(0),
		BusinessImpactScore: 1000,
		FirmRelevance:       50,
		AIConfidence:        99,
		Authority:           "FCA",
	})
	assert.Equal(t, 100, high)

	low := UrgencyScore(UrgencyFactors{
		BusinessImpactScore: -1000,
		FirmRelevance:       -50,
		AIConfidence:        -99,
	})
	assert.Equal(t, 0, low)
}

func TestShouldEscalate(t *testing.T) {
	tests := []struct {
		name           string
		severity       string
		urgencyScore   int
		daysToDeadline *int
		unreadFor      time.Duration
		want           bool
	}{
		{"critical severity always escalates", "critical", 0, nil, 0, true},
		{"high urgency score escalates", "warning", 80, nil, 0, true},
		{"deadline inside a week escalates", "info", 10, intPtr(7), 0, true},
		{"unread for a day escalates", "info", 10, nil, 24 * time.Hour, true},
		{"quiet alert does not escalate", "info", 79, intPtr(30), 23 * time.Hour, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldEscalate(tt.severity, tt.urgencyScore, tt.daysToDeadline, tt.unreadFor)
			assert.Equal(t, tt.want, got)
		})
	}
}
