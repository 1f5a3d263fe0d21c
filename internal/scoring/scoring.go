// Package scoring implements the deterministic rule tier of the
// signal/noise classifier. All functions are pure: same input, same
// output, no I/O.
package scoring

import "github.com/uiiaa/signoise/internal/domain"

// Activity-variant thresholds. Strict comparisons: a score of exactly
// 70 or 40 is NEUTRAL. The AI tier's scores are classified with these
// same thresholds by the dispatch policy.
const (
	activitySignalAbove = 70
	activityNoiseBelow  = 40
)

// Task-variant thresholds. Inclusive comparisons, deliberately not the
// same scale as the activity variant: tasks and activities are scored
// as distinct policies.
const (
	taskSignalAt  = 60
	taskNeutralAt = 30
)

// Clamp bounds a score to [0,100].
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ClassifyActivityScore maps an activity score to its classification.
func ClassifyActivityScore(score int) domain.Classification {
	switch {
	case score > activitySignalAbove:
		return domain.ClassSignal
	case score < activityNoiseBelow:
		return domain.ClassNoise
	default:
		return domain.ClassNeutral
	}
}

// ClassifyTaskScore maps a task score to its classification.
func ClassifyTaskScore(score int) domain.Classification {
	switch {
	case score >= taskSignalAt:
		return domain.ClassSignal
	case score >= taskNeutralAt:
		return domain.ClassNeutral
	default:
		return domain.ClassNoise
	}
}
