package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/repository"
	"github.com/uiiaa/signoise/internal/service"
	"github.com/uiiaa/signoise/internal/testutil"
)

func newTaskFixture(t *testing.T) service.TaskService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return service.NewTaskService(repository.NewSQLiteTaskRepo(database))
}

func TestTaskService_CreateScoresOnCreate(t *testing.T) {
	svc := newTaskFixture(t)

	task, err := svc.Create(context.Background(), service.CreateTaskInput{
		Title:            "Close enterprise deal",
		Priority:         "alta",
		GeneratesRevenue: true,
		Urgent:           true,
		Important:        true,
		Impact:           8,
		Effort:           2,
	})
	require.NoError(t, err)

	assert.Equal(t, 100, task.Result.Score)
	assert.Equal(t, domain.ClassSignal, task.Result.Classification)
	assert.Equal(t, domain.MethodRules, task.Result.Method)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
}

func TestTaskService_CreateRejectsEmptyTitle(t *testing.T) {
	svc := newTaskFixture(t)

	_, err := svc.Create(context.Background(), service.CreateTaskInput{})

	assert.Error(t, err)
}

func TestTaskService_UpdateReScores(t *testing.T) {
	svc := newTaskFixture(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, service.CreateTaskInput{Title: "Tidy the backlog"})
	require.NoError(t, err)
	before := task.Result.Score

	revenue := true
	high := "high"
	updated, err := svc.Update(ctx, task.ID, service.UpdateTaskInput{
		GeneratesRevenue: &revenue,
		Priority:         &high,
	})
	require.NoError(t, err)

	assert.Greater(t, updated.Result.Score, before)
	assert.Equal(t, domain.ClassSignal, updated.Result.Classification)
}

func TestTaskService_UpdateLeavesUnsetFieldsAlone(t *testing.T) {
	svc := newTaskFixture(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, service.CreateTaskInput{
		Title:  "Write onboarding doc",
		Impact: 7,
		Effort: 3,
	})
	require.NoError(t, err)

	title := "Write onboarding guide"
	updated, err := svc.Update(ctx, task.ID, service.UpdateTaskInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Write onboarding guide", updated.Title)
	assert.Equal(t, 7, updated.Impact)
	assert.Equal(t, 3, updated.Effort)
}

func TestTaskService_MoveValidatesStatus(t *testing.T) {
	svc := newTaskFixture(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, service.CreateTaskInput{Title: "Ship the release"})
	require.NoError(t, err)

	_, err = svc.Move(ctx, task.ID, domain.TaskStatus("shipped"))
	assert.Error(t, err)

	moved, err := svc.Move(ctx, task.ID, domain.TaskDone)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, moved.Status)
}

func TestTaskService_RemoveHidesFromList(t *testing.T) {
	svc := newTaskFixture(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, service.CreateTaskInput{Title: "Obsolete chore"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, task.ID))

	listed, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, listed)

	// Soft delete keeps the row reachable by ID for audits.
	got, err := svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestTaskService_ExplainListsFactors(t *testing.T) {
	svc := newTaskFixture(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, service.CreateTaskInput{
		Title:            "Renew top client contract",
		GeneratesRevenue: true,
		Impact:           9,
		Effort:           1,
	})
	require.NoError(t, err)

	explanation, err := svc.Explain(ctx, task.ID)
	require.NoError(t, err)

	assert.Contains(t, explanation, "generates revenue")
	assert.Contains(t, explanation, "impact 9 / effort 1")
}

func TestTaskService_ListFiltersByStatus(t *testing.T) {
	svc := newTaskFixture(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, service.CreateTaskInput{Title: "First"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.CreateTaskInput{Title: "Second"})
	require.NoError(t, err)

	_, err = svc.Move(ctx, a.ID, domain.TaskProgress)
	require.NoError(t, err)

	inProgress, err := svc.List(ctx, domain.TaskProgress)
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, "First", inProgress[0].Title)
}
