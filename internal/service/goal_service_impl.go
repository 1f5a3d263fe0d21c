package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/repository"
)

type goalService struct {
	goals repository.GoalRepo
}

// NewGoalService creates a GoalService.
func NewGoalService(goals repository.GoalRepo) GoalService {
	return &goalService{goals: goals}
}

func (s *goalService) Create(ctx context.Context, title string, goalType domain.GoalType) (*domain.Goal, error) {
	if title == "" {
		return nil, fmt.Errorf("goal title is required")
	}
	if goalType == "" {
		goalType = domain.GoalShortTerm
	}

	g := &domain.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      goalType,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.goals.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalService) List(ctx context.Context) ([]*domain.Goal, error) {
	return s.goals.List(ctx)
}
