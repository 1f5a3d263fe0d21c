package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/repository"
	"github.com/uiiaa/signoise/internal/scoring"
)

type taskService struct {
	tasks repository.TaskRepo
}

// NewTaskService creates a TaskService. Tasks are scored by the rule
// tier only; the AI tier applies to free-form activities.
func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, input CreateTaskInput) (*domain.KanbanTask, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	now := time.Now().UTC()
	t := &domain.KanbanTask{
		ID:               uuid.New().String(),
		Title:            input.Title,
		Description:      input.Description,
		Project:          input.Project,
		Status:           domain.TaskTodo,
		Priority:         domain.ParsePriority(input.Priority),
		GeneratesRevenue: input.GeneratesRevenue,
		Urgent:           input.Urgent,
		Important:        input.Important,
		Impact:           input.Impact,
		Effort:           input.Effort,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	t.Result = scoring.ScoreTask(t)

	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Get(ctx context.Context, id string) (*domain.KanbanTask, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, status domain.TaskStatus) ([]*domain.KanbanTask, error) {
	return s.tasks.List(ctx, status)
}

func (s *taskService) Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.KanbanTask, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Priority != nil {
		t.Priority = domain.ParsePriority(*input.Priority)
	}
	if input.GeneratesRevenue != nil {
		t.GeneratesRevenue = *input.GeneratesRevenue
	}
	if input.Urgent != nil {
		t.Urgent = *input.Urgent
	}
	if input.Important != nil {
		t.Important = *input.Important
	}
	if input.Impact != nil {
		t.Impact = *input.Impact
	}
	if input.Effort != nil {
		t.Effort = *input.Effort
	}

	// Field edits change the score inputs, so always re-score.
	t.Result = scoring.ScoreTask(t)
	t.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Move(ctx context.Context, id string, status domain.TaskStatus) (*domain.KanbanTask, error) {
	if !domain.ValidTaskStatuses[string(status)] {
		return nil, fmt.Errorf("invalid task status %q", status)
	}

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Status = status
	t.Result = scoring.ScoreTask(t)
	t.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Remove(ctx context.Context, id string) error {
	return s.tasks.SoftDelete(ctx, id)
}

func (s *taskService) Explain(ctx context.Context, id string) (string, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return scoring.ExplainTask(t, t.Result), nil
}
