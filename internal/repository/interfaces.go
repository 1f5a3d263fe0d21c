package repository

import (
	"context"
	"time"

	"github.com/uiiaa/signoise/internal/domain"
)

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListRecent(ctx context.Context, days int) ([]*domain.Activity, error)
	UpdateResult(ctx context.Context, id string, result domain.ClassificationResult) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.KanbanTask) error
	GetByID(ctx context.Context, id string) (*domain.KanbanTask, error)
	// List returns active tasks, optionally filtered by status.
	List(ctx context.Context, status domain.TaskStatus) ([]*domain.KanbanTask, error)
	Update(ctx context.Context, t *domain.KanbanTask) error
	// SoftDelete flags a task inactive; the row is never removed.
	SoftDelete(ctx context.Context, id string) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
}

type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context) ([]*domain.Habit, error)
	LogCompletion(ctx context.Context, log *domain.HabitLog) error
	CompletionDays(ctx context.Context, habitID string, since time.Time) ([]time.Time, error)
}
