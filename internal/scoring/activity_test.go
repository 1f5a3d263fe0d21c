package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uiiaa/signoise/internal/domain"
)

func TestScoreActivity_NeutralBaseline(t *testing.T) {
	s := NewActivityScorer()

	result := s.Score(&domain.Activity{
		Description:  "",
		EnergyBefore: 5,
		EnergyAfter:  5,
	})

	assert.Equal(t, 50, result.Score)
	assert.Equal(t, domain.ClassNeutral, result.Classification)
	assert.Equal(t, 0.5, result.Confidence)
	assert.Equal(t, "", result.Reasoning)
	assert.Equal(t, domain.MethodRules, result.Method)
}

func TestScoreActivity_GoalKeyword(t *testing.T) {
	s := NewActivityScorer()

	result := s.Score(&domain.Activity{
		Description:     "worked toward the launch goal",
		DurationMinutes: 90,
		EnergyBefore:    5,
		EnergyAfter:     5,
	})

	assert.Equal(t, 80, result.Score)
	assert.Equal(t, domain.ClassSignal, result.Classification)
	assert.Contains(t, result.Reasoning, "advances a goal")
}

func TestScoreActivity_DistractionDominance(t *testing.T) {
	s := NewActivityScorer()

	// 50 + 30 (goal) - 40 (distraction) = 40, which is not strictly
	// below 40, so the result stays NEUTRAL.
	result := s.Score(&domain.Activity{
		Description:     "watching youtube for research, advances goal",
		DurationMinutes: 120,
		EnergyBefore:    5,
		EnergyAfter:     5,
	})

	assert.Equal(t, 40, result.Score)
	assert.Equal(t, domain.ClassNeutral, result.Classification)
	assert.Contains(t, result.Reasoning, "advances a goal")
	assert.Contains(t, result.Reasoning, "known distraction")
}

func TestScoreActivity_PureDistractionIsNoise(t *testing.T) {
	s := NewActivityScorer()

	result := s.Score(&domain.Activity{
		Description:     "scrolling instagram",
		DurationMinutes: 45,
		EnergyBefore:    6,
		EnergyAfter:     4,
	})

	assert.Equal(t, 10, result.Score)
	assert.Equal(t, domain.ClassNoise, result.Classification)
}

func TestScoreActivity_EmptyDescriptionOnlyEnergyRuleFires(t *testing.T) {
	s := NewActivityScorer()

	result := s.Score(&domain.Activity{
		Description:  "",
		EnergyBefore: 3,
		EnergyAfter:  8,
	})

	assert.Equal(t, 70, result.Score)
	assert.Equal(t, domain.ClassNeutral, result.Classification, "70 is not strictly above 70")
	assert.Equal(t, "energizing", result.Reasoning)
}

func TestScoreActivity_ConfidenceRisesWithMoreRules(t *testing.T) {
	s := NewActivityScorer()

	// Three rules fire: goal, energizing, short high-impact.
	result := s.Score(&domain.Activity{
		Description:     "shipped a critical milestone",
		DurationMinutes: 30,
		EnergyBefore:    4,
		EnergyAfter:     7,
	})

	assert.Equal(t, 100, result.Score, "50+30+20+20 clamps to 100")
	assert.Equal(t, domain.ClassSignal, result.Classification)
	assert.Equal(t, 0.8, result.Confidence)
}

func TestScoreActivity_ImpactRuleNeedsShortDuration(t *testing.T) {
	s := NewActivityScorer()

	short := s.Score(&domain.Activity{Description: "critical fix", DurationMinutes: 30})
	long := s.Score(&domain.Activity{Description: "critical fix", DurationMinutes: 60})

	assert.Equal(t, 70, short.Score)
	assert.Equal(t, 50, long.Score, "60 minutes is not under an hour")
}

func TestScoreActivity_DetectorsAreCaseInsensitive(t *testing.T) {
	s := NewActivityScorer()

	result := s.Score(&domain.Activity{Description: "Watched YouTube", DurationMinutes: 20})

	assert.Contains(t, result.Reasoning, "known distraction")
}

func TestScoreActivity_ClampInvariant(t *testing.T) {
	s := NewActivityScorer()

	activities := []*domain.Activity{
		{Description: "goal milestone critical ship", DurationMinutes: 10, EnergyBefore: 1, EnergyAfter: 10},
		{Description: "netflix scrolling tiktok", DurationMinutes: 300, EnergyBefore: 9, EnergyAfter: 1},
		{},
	}
	for _, a := range activities {
		result := s.Score(a)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
	}
}

func TestScoreActivity_Idempotent(t *testing.T) {
	s := NewActivityScorer()
	a := &domain.Activity{
		Description:     "deep work on the project deadline",
		DurationMinutes: 50,
		EnergyBefore:    4,
		EnergyAfter:     6,
	}

	first := s.Score(a)
	second := s.Score(a)

	assert.Equal(t, first, second)
}

func TestClassifyActivityScore_Thresholds(t *testing.T) {
	cases := []struct {
		score int
		want  domain.Classification
	}{
		{0, domain.ClassNoise},
		{39, domain.ClassNoise},
		{40, domain.ClassNeutral},
		{70, domain.ClassNeutral},
		{71, domain.ClassSignal},
		{100, domain.ClassSignal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyActivityScore(tc.score), "score %d", tc.score)
	}
}
