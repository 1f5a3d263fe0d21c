package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uiiaa/signoise/internal/domain"
)

func sampleActivity() *domain.Activity {
	return &domain.Activity{
		ID:              "12345678-aaaa-bbbb-cccc-1234567890ab",
		Description:     "drafted the launch plan",
		DurationMinutes: 90,
		EnergyBefore:    4,
		EnergyAfter:     7,
		Result: domain.ClassificationResult{
			Score:          80,
			Classification: domain.ClassSignal,
			Confidence:     0.8,
			Reasoning:      "advances a goal; energizing",
			Method:         domain.MethodRules,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestFormatActivityList_ShowsVerdictAndDuration(t *testing.T) {
	out := FormatActivityList([]*domain.Activity{sampleActivity()})

	assert.Contains(t, out, "drafted the launch plan")
	assert.Contains(t, out, "SIGNAL")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "12345678")
}

func TestFormatActivityList_TruncatesLongDescriptions(t *testing.T) {
	a := sampleActivity()
	a.Description = "an extremely long activity description that would wreck the table layout if rendered in full"

	out := FormatActivityList([]*domain.Activity{a})

	assert.NotContains(t, out, "wreck the table layout")
	assert.Contains(t, out, "…")
}

func TestFormatActivityDetail_RendersReasoningLines(t *testing.T) {
	a := sampleActivity()
	goal := &domain.Goal{ID: "g1", Title: "Launch v2", Type: domain.GoalShortTerm}

	out := FormatActivityDetail(a, goal)

	assert.Contains(t, out, "advances a goal")
	assert.Contains(t, out, "energizing")
	assert.Contains(t, out, "Launch v2")
	assert.Contains(t, out, "4 → 7")
}

func TestFormatActivityDetail_OmitsGoalWhenNil(t *testing.T) {
	out := FormatActivityDetail(sampleActivity(), nil)

	assert.NotContains(t, out, "GOAL")
}

func TestScoreBar_ClampsAndColorsByThreshold(t *testing.T) {
	assert.Contains(t, ScoreBar(150, 10), "100")
	assert.Contains(t, ScoreBar(-5, 10), "  0")
}
