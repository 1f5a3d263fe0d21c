package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/intelligence"
	"github.com/uiiaa/signoise/internal/repository"
	"github.com/uiiaa/signoise/internal/scoring"
	"github.com/uiiaa/signoise/internal/service"
	"github.com/uiiaa/signoise/internal/testutil"
)

// stubClassifier returns a fixed result and records the goal context it
// was given.
type stubClassifier struct {
	result domain.ClassificationResult
	goals  []*domain.GoalContext
}

func (s *stubClassifier) ClassifyActivity(_ context.Context, _ *domain.Activity, goal *domain.GoalContext) domain.ClassificationResult {
	s.goals = append(s.goals, goal)
	return s.result
}

func (s *stubClassifier) ClassifyWithAI(context.Context, *domain.Activity, *domain.GoalContext) (*intelligence.AIScore, error) {
	return nil, intelligence.ErrAIDisabled
}

func newActivityFixture(t *testing.T, classifier intelligence.Classifier) (service.ActivityService, repository.ActivityRepo, repository.GoalRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	activities := repository.NewSQLiteActivityRepo(database)
	goals := repository.NewSQLiteGoalRepo(database)
	return service.NewActivityService(activities, goals, classifier), activities, goals
}

func TestActivityService_LogClassifiesAndPersists(t *testing.T) {
	classifier := &stubClassifier{result: domain.ClassificationResult{
		Score:          85,
		Classification: domain.ClassSignal,
		Confidence:     0.9,
		Reasoning:      "directly advances the goal",
		Method:         domain.MethodAIWithGoal,
	}}
	svc, activities, goals := newActivityFixture(t, classifier)
	ctx := context.Background()

	g := testutil.NewTestGoal("Launch v2")
	require.NoError(t, goals.Create(ctx, g))

	a, err := svc.Log(ctx, service.LogActivityInput{
		Description:     "drafted the v2 rollout plan",
		DurationMinutes: 45,
		EnergyBefore:    5,
		EnergyAfter:     7,
		GoalID:          g.ID,
	})
	require.NoError(t, err)

	// The goal context was resolved and handed to the classifier.
	require.Len(t, classifier.goals, 1)
	require.NotNil(t, classifier.goals[0])
	assert.Equal(t, "Launch v2", classifier.goals[0].Title)

	stored, err := activities.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 85, stored.Result.Score)
	assert.Equal(t, domain.MethodAIWithGoal, stored.Result.Method)
}

func TestActivityService_LogWithoutGoalPassesNilContext(t *testing.T) {
	classifier := &stubClassifier{result: domain.ClassificationResult{
		Score: 50, Classification: domain.ClassNeutral, Confidence: 0.5, Method: domain.MethodRules,
	}}
	svc, _, _ := newActivityFixture(t, classifier)

	_, err := svc.Log(context.Background(), service.LogActivityInput{
		Description:     "sorted inbox",
		DurationMinutes: 20,
	})
	require.NoError(t, err)

	require.Len(t, classifier.goals, 1)
	assert.Nil(t, classifier.goals[0])
}

func TestActivityService_LogRejectsEmptyDescription(t *testing.T) {
	svc, _, _ := newActivityFixture(t, &stubClassifier{})

	_, err := svc.Log(context.Background(), service.LogActivityInput{DurationMinutes: 10})

	assert.Error(t, err)
}

func TestActivityService_LogRejectsNegativeDuration(t *testing.T) {
	svc, _, _ := newActivityFixture(t, &stubClassifier{})

	_, err := svc.Log(context.Background(), service.LogActivityInput{
		Description:     "time travel",
		DurationMinutes: -5,
	})

	assert.Error(t, err)
}

func TestActivityService_DanglingGoalClassifiedWithoutContext(t *testing.T) {
	classifier := &stubClassifier{result: domain.ClassificationResult{
		Score: 50, Classification: domain.ClassNeutral, Confidence: 0.5, Method: domain.MethodRules,
	}}
	svc, _, _ := newActivityFixture(t, classifier)

	_, err := svc.Log(context.Background(), service.LogActivityInput{
		Description: "misc work",
		GoalID:      "no-such-goal",
	})
	require.NoError(t, err)

	require.Len(t, classifier.goals, 1)
	assert.Nil(t, classifier.goals[0], "dangling goal reference must not fail the log")
}

func TestActivityService_ReclassifyPersistsNewResult(t *testing.T) {
	// Start with a rules-only classifier, then reclassify with an
	// "AI-backed" stub to simulate a later, richer pass.
	rulesOnly := intelligence.NewRulesOnlyClassifier(scoring.NewActivityScorer())
	database := testutil.NewTestDB(t)
	activities := repository.NewSQLiteActivityRepo(database)
	goals := repository.NewSQLiteGoalRepo(database)
	ctx := context.Background()

	first := service.NewActivityService(activities, goals, rulesOnly)
	a, err := first.Log(ctx, service.LogActivityInput{
		Description:     "reading email",
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MethodRules, a.Result.Method)

	aiBacked := service.NewActivityService(activities, goals, &stubClassifier{result: domain.ClassificationResult{
		Score:          20,
		Classification: domain.ClassNoise,
		Confidence:     0.8,
		Reasoning:      "low-value triage",
		Method:         domain.MethodAI,
	}})
	reclassified, err := aiBacked.Reclassify(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MethodAI, reclassified.Result.Method)

	stored, err := activities.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.Result.Score)
}

func TestActivityService_ReclassifyMissing(t *testing.T) {
	svc, _, _ := newActivityFixture(t, &stubClassifier{})

	_, err := svc.Reclassify(context.Background(), "nope")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
