package intelligence

import (
	"context"
	"fmt"
	"strings"
)

// DeterministicWeeklyReview builds coaching advice directly from trace
// data without the model. Used as a fallback when Ollama is unavailable
// or the model output fails validation.
func DeterministicWeeklyReview(trace WeeklyTrace) *CoachAdvice {
	total := trace.SignalMinutes + trace.NoiseMinutes + trace.NeutralMinutes

	advice := &CoachAdvice{
		Confidence: 1.0, // deterministic = fully faithful to the data
	}

	if total == 0 {
		advice.Summary = fmt.Sprintf("No classified activity in the past %d days. Log a few activities to get a picture of where your time goes.", trace.PeriodDays)
		advice.Suggestions = []string{"Log each work block right after finishing it."}
		return advice
	}

	ratio := trace.SignalRatio()
	advice.Summary = fmt.Sprintf(
		"Past %d days: %d activities, %d minutes logged. %d min signal, %d min noise, %d min neutral (%.0f%% signal).",
		trace.PeriodDays, trace.ActivityCount, total,
		trace.SignalMinutes, trace.NoiseMinutes, trace.NeutralMinutes, ratio*100)

	switch {
	case ratio >= 0.6:
		advice.Suggestions = append(advice.Suggestions, "Strong signal share. Protect the routines that produced it.")
	case ratio >= 0.3:
		advice.Suggestions = append(advice.Suggestions, "Signal and noise are roughly balanced. Pick one noise source to cut next week.")
	default:
		advice.Suggestions = append(advice.Suggestions, "Noise dominated this week. Schedule signal work before opening anything else.")
	}

	if len(trace.TopNoiseSources) > 0 {
		advice.Suggestions = append(advice.Suggestions,
			"Biggest noise sources: "+strings.Join(trace.TopNoiseSources, ", ")+".")
	}

	for habit, streak := range trace.HabitStreaks {
		if streak >= 7 {
			advice.Suggestions = append(advice.Suggestions,
				fmt.Sprintf("%q is on a %d-day streak. Keep it going.", habit, streak))
		}
	}

	return advice
}

type deterministicCoach struct{}

// NewDeterministicCoach returns a Coach that always uses the
// trace-derived summary. Wired when the LLM subsystem is disabled.
func NewDeterministicCoach() Coach {
	return deterministicCoach{}
}

func (deterministicCoach) WeeklyReview(_ context.Context, trace WeeklyTrace) *CoachAdvice {
	return DeterministicWeeklyReview(trace)
}
