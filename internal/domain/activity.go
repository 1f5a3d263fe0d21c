package domain

import "time"

// Activity is a free-form log entry. It is classified once at logging
// time and is immutable afterwards except for re-classification.
type Activity struct {
	ID              string
	Description     string
	DurationMinutes int
	EnergyBefore    int // ordinal 1-10
	EnergyAfter     int // ordinal 1-10
	GoalID          string
	Impact          int // optional 1-10, 0 when unset
	Effort          int // optional 1-10, 0 when unset

	Result ClassificationResult

	CreatedAt time.Time
}

// Energizing reports whether the activity raised the user's energy.
func (a *Activity) Energizing() bool {
	return a.EnergyAfter > a.EnergyBefore
}
