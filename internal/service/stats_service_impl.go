package service

import (
	"context"
	"sort"

	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/intelligence"
	"github.com/uiiaa/signoise/internal/repository"
)

const maxNoiseSources = 3

type statsService struct {
	activities repository.ActivityRepo
	habits     HabitService
}

// NewStatsService creates a StatsService.
func NewStatsService(activities repository.ActivityRepo, habits HabitService) StatsService {
	return &statsService{activities: activities, habits: habits}
}

func (s *statsService) WeeklyTrace(ctx context.Context, periodDays int) (intelligence.WeeklyTrace, error) {
	trace := intelligence.WeeklyTrace{PeriodDays: periodDays}

	activities, err := s.activities.ListRecent(ctx, periodDays)
	if err != nil {
		return trace, err
	}

	type noiseSource struct {
		description string
		minutes     int
	}
	var noise []noiseSource

	trace.ActivityCount = len(activities)
	for _, a := range activities {
		switch a.Result.Classification {
		case domain.ClassSignal:
			trace.SignalMinutes += a.DurationMinutes
		case domain.ClassNoise:
			trace.NoiseMinutes += a.DurationMinutes
			noise = append(noise, noiseSource{a.Description, a.DurationMinutes})
		default:
			trace.NeutralMinutes += a.DurationMinutes
		}
	}

	sort.SliceStable(noise, func(i, j int) bool {
		return noise[i].minutes > noise[j].minutes
	})
	for i, n := range noise {
		if i == maxNoiseSources {
			break
		}
		trace.TopNoiseSources = append(trace.TopNoiseSources, n.description)
	}

	statuses, err := s.habits.ListWithStreaks(ctx)
	if err != nil {
		return trace, err
	}
	if len(statuses) > 0 {
		trace.HabitStreaks = make(map[string]int, len(statuses))
		for _, st := range statuses {
			trace.HabitStreaks[st.Habit.Name] = st.Streak
		}
	}

	return trace, nil
}
