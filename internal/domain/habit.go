package domain

import "time"

// Habit is a recurring practice checked off by date.
type Habit struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// HabitLog records one completion of a habit on a calendar day.
type HabitLog struct {
	ID        string
	HabitID   string
	Day       time.Time // midnight UTC of the completion day
	CreatedAt time.Time
}

// Streak computes the current consecutive-day streak ending today (or
// yesterday, so an unfinished today does not break the chain). Days must
// be midnight-normalized; duplicates are tolerated.
func Streak(days []time.Time, today time.Time) int {
	done := make(map[time.Time]bool, len(days))
	for _, d := range days {
		done[d.UTC().Truncate(24*time.Hour)] = true
	}

	cursor := today.UTC().Truncate(24 * time.Hour)
	if !done[cursor] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for done[cursor] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
