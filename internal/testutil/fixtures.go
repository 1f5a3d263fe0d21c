package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/uiiaa/signoise/internal/domain"
)

// Activity options
type ActivityOption func(*domain.Activity)

func WithDuration(minutes int) ActivityOption {
	return func(a *domain.Activity) {
		a.DurationMinutes = minutes
	}
}

func WithEnergy(before, after int) ActivityOption {
	return func(a *domain.Activity) {
		a.EnergyBefore = before
		a.EnergyAfter = after
	}
}

func WithGoalID(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.GoalID = id
	}
}

func WithResult(r domain.ClassificationResult) ActivityOption {
	return func(a *domain.Activity) {
		a.Result = r
	}
}

func NewTestActivity(description string, opts ...ActivityOption) *domain.Activity {
	a := &domain.Activity{
		ID:              uuid.New().String(),
		Description:     description,
		DurationMinutes: 30,
		EnergyBefore:    5,
		EnergyAfter:     5,
		Result: domain.ClassificationResult{
			Score:          50,
			Classification: domain.ClassNeutral,
			Confidence:     0.5,
			Method:         domain.MethodRules,
		},
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Task options
type TaskOption func(*domain.KanbanTask)

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.KanbanTask) {
		t.Priority = p
	}
}

func WithRevenue() TaskOption {
	return func(t *domain.KanbanTask) {
		t.GeneratesRevenue = true
	}
}

func WithUrgency(urgent, important bool) TaskOption {
	return func(t *domain.KanbanTask) {
		t.Urgent = urgent
		t.Important = important
	}
}

func WithImpactEffort(impact, effort int) TaskOption {
	return func(t *domain.KanbanTask) {
		t.Impact = impact
		t.Effort = effort
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.KanbanTask) {
		t.Status = s
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.KanbanTask {
	now := time.Now().UTC()
	t := &domain.KanbanTask{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.TaskTodo,
		Priority:  domain.PriorityLow,
		Impact:    5,
		Effort:    5,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestGoal(title string) *domain.Goal {
	return &domain.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.GoalShortTerm,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestHabit(name string) *domain.Habit {
	return &domain.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
