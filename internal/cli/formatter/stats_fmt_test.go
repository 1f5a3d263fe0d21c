package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uiiaa/signoise/internal/intelligence"
)

func TestFormatWeeklyTrace_ShowsBreakdownAndNoise(t *testing.T) {
	trace := intelligence.WeeklyTrace{
		PeriodDays:      7,
		ActivityCount:   6,
		SignalMinutes:   300,
		NoiseMinutes:    120,
		NeutralMinutes:  80,
		TopNoiseSources: []string{"youtube", "reddit"},
		HabitStreaks:    map[string]int{"run": 9, "journal": 2},
	}

	out := FormatWeeklyTrace(trace)

	assert.Contains(t, out, "6 activities")
	assert.Contains(t, out, "5h")
	assert.Contains(t, out, "youtube")
	assert.Contains(t, out, "reddit")
	assert.Contains(t, out, "9d")
	assert.Contains(t, out, "run")
	assert.Contains(t, out, "60%")
}

func TestFormatWeeklyTrace_EmptyPeriod(t *testing.T) {
	out := FormatWeeklyTrace(intelligence.WeeklyTrace{PeriodDays: 7})

	assert.Contains(t, out, "Nothing logged yet.")
}

func TestFormatCoachAdvice_RendersSuggestions(t *testing.T) {
	advice := &intelligence.CoachAdvice{
		Summary:     "A strong week overall.",
		Suggestions: []string{"Protect your morning block.", "Cut the evening scroll."},
		Confidence:  0.9,
	}

	out := FormatCoachAdvice(advice)

	assert.Contains(t, out, "A strong week overall.")
	assert.Contains(t, out, "Protect your morning block.")
	assert.Contains(t, out, "confidence 0.9")
}
