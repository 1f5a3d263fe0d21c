package service

import (
	"context"

	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/intelligence"
)

// LogActivityInput carries a new activity log entry.
type LogActivityInput struct {
	Description     string
	DurationMinutes int
	EnergyBefore    int
	EnergyAfter     int
	GoalID          string
	Impact          int
	Effort          int
}

type ActivityService interface {
	// Log classifies and persists a new activity. Classification never
	// fails for well-formed input; worst case is a rules-only result.
	Log(ctx context.Context, input LogActivityInput) (*domain.Activity, error)

	// Reclassify re-runs the full classification for a stored activity
	// and persists the new result.
	Reclassify(ctx context.Context, id string) (*domain.Activity, error)

	ListRecent(ctx context.Context, days int) ([]*domain.Activity, error)
}

// CreateTaskInput carries a new kanban task.
type CreateTaskInput struct {
	Title            string
	Description      string
	Project          string
	Priority         string // accepts aliases, see domain.ParsePriority
	GeneratesRevenue bool
	Urgent           bool
	Important        bool
	Impact           int
	Effort           int
}

// UpdateTaskInput carries field edits; nil means "leave unchanged".
type UpdateTaskInput struct {
	Title            *string
	Description      *string
	Priority         *string
	GeneratesRevenue *bool
	Urgent           *bool
	Important        *bool
	Impact           *int
	Effort           *int
}

type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.KanbanTask, error)
	Get(ctx context.Context, id string) (*domain.KanbanTask, error)
	List(ctx context.Context, status domain.TaskStatus) ([]*domain.KanbanTask, error)
	// Update applies field edits and re-scores the task.
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.KanbanTask, error)
	// Move transitions the task to a new kanban column.
	Move(ctx context.Context, id string, status domain.TaskStatus) (*domain.KanbanTask, error)
	// Remove soft-deletes the task.
	Remove(ctx context.Context, id string) error
	// Explain renders the score breakdown for display/audit.
	Explain(ctx context.Context, id string) (string, error)
}

type GoalService interface {
	Create(ctx context.Context, title string, goalType domain.GoalType) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
}

// HabitStatus pairs a habit with its current streak.
type HabitStatus struct {
	Habit  *domain.Habit
	Streak int
}

type HabitService interface {
	Create(ctx context.Context, name string) (*domain.Habit, error)
	// CheckIn marks the habit done today; repeat check-ins are no-ops.
	CheckIn(ctx context.Context, habitID string) error
	ListWithStreaks(ctx context.Context) ([]HabitStatus, error)
}

type StatsService interface {
	// WeeklyTrace aggregates the last periodDays of classified activity
	// into the flat view consumed by the stats command and the coach.
	WeeklyTrace(ctx context.Context, periodDays int) (intelligence.WeeklyTrace, error)
}
