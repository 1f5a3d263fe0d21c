package intelligence

import "fmt"

// Confidence bands for the dispatch policy. The rule tier reports 0.8
// when enough rules agree; below that the AI tier is always consulted.
const (
	confidentRules = 0.8
	aiFloor        = 0.8
	aiWithGoalHigh = 0.9
)

// AIScore is the structured payload the model must return for a
// classification request. Score is a pointer so a response that omits
// the field is distinguishable from a genuine zero and can be rejected.
type AIScore struct {
	Score     *int   `json:"score"`
	Reasoning string `json:"reasoning"`
}

// validateAIScore rejects payloads without a score field. Out-of-range
// scores are tolerated here and clamped by the caller: a usable number
// beats a rules-only fallback.
func validateAIScore(p AIScore) error {
	if p.Score == nil {
		return fmt.Errorf("response is missing the score field")
	}
	return nil
}

// CoachAdvice is a narrative weekly summary with actionable suggestions.
type CoachAdvice struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
	Confidence  float64  `json:"confidence"`
}

// WeeklyTrace is a flattened, JSON-serializable view of the aggregate
// stats behind a coaching request. Passed to the model as grounding so
// the narrative stays tied to real numbers.
type WeeklyTrace struct {
	PeriodDays      int            `json:"period_days"`
	ActivityCount   int            `json:"activity_count"`
	SignalMinutes   int            `json:"signal_minutes"`
	NoiseMinutes    int            `json:"noise_minutes"`
	NeutralMinutes  int            `json:"neutral_minutes"`
	TopNoiseSources []string       `json:"top_noise_sources,omitempty"`
	HabitStreaks    map[string]int `json:"habit_streaks,omitempty"`
}

// SignalRatio returns the share of classified minutes spent on signal,
// or 0 when nothing was logged.
func (t WeeklyTrace) SignalRatio() float64 {
	total := t.SignalMinutes + t.NoiseMinutes + t.NeutralMinutes
	if total == 0 {
		return 0
	}
	return float64(t.SignalMinutes) / float64(total)
}
