package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/intelligence"
	"github.com/uiiaa/signoise/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
	goals      repository.GoalRepo
	classifier intelligence.Classifier
}

// NewActivityService creates an ActivityService.
func NewActivityService(activities repository.ActivityRepo, goals repository.GoalRepo, classifier intelligence.Classifier) ActivityService {
	return &activityService{activities: activities, goals: goals, classifier: classifier}
}

func (s *activityService) Log(ctx context.Context, input LogActivityInput) (*domain.Activity, error) {
	if input.Description == "" {
		return nil, fmt.Errorf("activity description is required")
	}
	if input.DurationMinutes < 0 {
		return nil, fmt.Errorf("duration must be non-negative")
	}

	a := &domain.Activity{
		ID:              uuid.New().String(),
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		EnergyBefore:    input.EnergyBefore,
		EnergyAfter:     input.EnergyAfter,
		GoalID:          input.GoalID,
		Impact:          input.Impact,
		Effort:          input.Effort,
		CreatedAt:       time.Now().UTC(),
	}

	goal, err := s.resolveGoal(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	a.Result = s.classifier.ClassifyActivity(ctx, a, goal)

	if err := s.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *activityService) Reclassify(ctx context.Context, id string) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	goal, err := s.resolveGoal(ctx, a.GoalID)
	if err != nil {
		return nil, err
	}

	a.Result = s.classifier.ClassifyActivity(ctx, a, goal)

	if err := s.activities.UpdateResult(ctx, id, a.Result); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *activityService) ListRecent(ctx context.Context, days int) ([]*domain.Activity, error) {
	return s.activities.ListRecent(ctx, days)
}

// resolveGoal looks up the goal context for prompting. A dangling goal
// reference is not fatal: the activity is classified without context.
func (s *activityService) resolveGoal(ctx context.Context, goalID string) (*domain.GoalContext, error) {
	if goalID == "" {
		return nil, nil
	}
	g, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return g.Context(), nil
}
