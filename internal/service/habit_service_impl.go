package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/repository"
)

// streakWindowDays bounds how far back streak computation looks.
const streakWindowDays = 365

type habitService struct {
	habits repository.HabitRepo
	now    func() time.Time
}

// NewHabitService creates a HabitService.
func NewHabitService(habits repository.HabitRepo) HabitService {
	return &habitService{habits: habits, now: time.Now}
}

func (s *habitService) Create(ctx context.Context, name string) (*domain.Habit, error) {
	if name == "" {
		return nil, fmt.Errorf("habit name is required")
	}

	h := &domain.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: s.now().UTC(),
	}
	if err := s.habits.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *habitService) CheckIn(ctx context.Context, habitID string) error {
	if _, err := s.habits.GetByID(ctx, habitID); err != nil {
		return err
	}

	now := s.now().UTC()
	return s.habits.LogCompletion(ctx, &domain.HabitLog{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Day:       now.Truncate(24 * time.Hour),
		CreatedAt: now,
	})
}

func (s *habitService) ListWithStreaks(ctx context.Context) ([]HabitStatus, error) {
	habits, err := s.habits.List(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now().UTC()
	since := today.AddDate(0, 0, -streakWindowDays)

	statuses := make([]HabitStatus, 0, len(habits))
	for _, h := range habits {
		days, err := s.habits.CompletionDays(ctx, h.ID, since)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, HabitStatus{
			Habit:  h,
			Streak: domain.Streak(days, today),
		})
	}
	return statuses, nil
}
