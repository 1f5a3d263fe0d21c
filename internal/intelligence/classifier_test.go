package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/llm"
	"github.com/uiiaa/signoise/internal/scoring"
)

// fakeClient returns a canned response (or error) and records every call.
type fakeClient struct {
	response string
	err      error
	calls    []llm.GenerateRequest
}

func (f *fakeClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.response, Model: "fake"}, nil
}

func (f *fakeClient) Available(context.Context) bool { return f.err == nil }

// lowConfidenceActivity fires at most one rule (confidence 0.5).
func lowConfidenceActivity() *domain.Activity {
	return &domain.Activity{
		Description:     "reading email",
		DurationMinutes: 90,
		EnergyBefore:    5,
		EnergyAfter:     5,
	}
}

// highConfidenceActivity fires three rules (confidence 0.8).
func highConfidenceActivity() *domain.Activity {
	return &domain.Activity{
		Description:     "shipped a critical milestone",
		DurationMinutes: 30,
		EnergyBefore:    4,
		EnergyAfter:     7,
	}
}

func TestClassifyActivity_AIFailureFallsBackToRulesUnchanged(t *testing.T) {
	client := &fakeClient{err: llm.ErrUnavailable}
	c := NewClassifier(client, scoring.NewActivityScorer())
	a := lowConfidenceActivity()

	ruleOnly := scoring.NewActivityScorer().Score(a)

	withoutGoal := c.ClassifyActivity(context.Background(), a, nil)
	withGoal := c.ClassifyActivity(context.Background(), a, &domain.GoalContext{Title: "Inbox zero", Type: domain.GoalShortTerm})

	assert.Equal(t, ruleOnly, withoutGoal)
	assert.Equal(t, ruleOnly, withGoal)
	assert.Equal(t, domain.MethodRules, withGoal.Method)
}

func TestClassifyActivity_ConfidentRulesWithoutGoalSkipsAI(t *testing.T) {
	client := &fakeClient{response: `{"score": 5, "reasoning": "should never be used"}`}
	c := NewClassifier(client, scoring.NewActivityScorer())

	result := c.ClassifyActivity(context.Background(), highConfidenceActivity(), nil)

	assert.Empty(t, client.calls, "AI must not be consulted")
	assert.Equal(t, domain.MethodRules, result.Method)
	assert.Equal(t, 0.8, result.Confidence)
}

func TestClassifyActivity_LowConfidenceConsultsAI(t *testing.T) {
	client := &fakeClient{response: `{"score": 85, "reasoning": "deep work"}`}
	c := NewClassifier(client, scoring.NewActivityScorer())

	result := c.ClassifyActivity(context.Background(), lowConfidenceActivity(), nil)

	require.Len(t, client.calls, 1)
	assert.Equal(t, llm.TaskClassify, client.calls[0].Task)
	assert.Equal(t, 85, result.Score)
	assert.Equal(t, domain.ClassSignal, result.Classification)
	assert.Equal(t, "deep work", result.Reasoning)
	assert.Equal(t, domain.MethodAI, result.Method)
	assert.Equal(t, 0.8, result.Confidence, "raised to max(ruleConfidence, 0.8)")
}

func TestClassifyActivity_GoalContextOverridesConfidentRules(t *testing.T) {
	client := &fakeClient{response: `{"score": 85, "reasoning": "directly advances the goal"}`}
	c := NewClassifier(client, scoring.NewActivityScorer())
	goal := &domain.GoalContext{Title: "Launch v2", Type: domain.GoalMediumTerm}

	result := c.ClassifyActivity(context.Background(), highConfidenceActivity(), goal)

	require.Len(t, client.calls, 1)
	assert.Contains(t, client.calls[0].UserPrompt, "Launch v2")
	assert.Equal(t, 85, result.Score)
	assert.Equal(t, domain.ClassSignal, result.Classification)
	assert.Equal(t, domain.MethodAIWithGoal, result.Method)
	assert.Equal(t, 0.9, result.Confidence)
}

func TestClassifyActivity_AIScoreIsClamped(t *testing.T) {
	client := &fakeClient{response: `{"score": 140, "reasoning": "enthusiastic model"}`}
	c := NewClassifier(client, scoring.NewActivityScorer())

	result := c.ClassifyActivity(context.Background(), lowConfidenceActivity(), nil)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.ClassSignal, result.Classification)
}

func TestClassifyWithAI_MissingScoreFieldIsFailure(t *testing.T) {
	client := &fakeClient{response: `{"reasoning": "forgot the score"}`}
	c := NewClassifier(client, scoring.NewActivityScorer())

	_, err := c.ClassifyWithAI(context.Background(), lowConfidenceActivity(), nil)

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestClassifyWithAI_ProseWrappedJSONParses(t *testing.T) {
	client := &fakeClient{response: "Here you go:\n```json\n{\"score\": 20, \"reasoning\": \"mostly noise\"}\n```"}
	c := NewClassifier(client, scoring.NewActivityScorer())

	got, err := c.ClassifyWithAI(context.Background(), lowConfidenceActivity(), nil)

	require.NoError(t, err)
	assert.Equal(t, 20, *got.Score)
}

func TestClassifyWithAI_NetworkErrorPropagates(t *testing.T) {
	client := &fakeClient{err: errors.New("connection reset")}
	c := NewClassifier(client, scoring.NewActivityScorer())

	_, err := c.ClassifyWithAI(context.Background(), lowConfidenceActivity(), nil)

	assert.Error(t, err)
}

func TestBuildClassifyPrompt_GoalAddendum(t *testing.T) {
	a := lowConfidenceActivity()

	system, user := buildClassifyPrompt(a, nil)
	assert.NotContains(t, system, "goal-relevance")
	assert.Contains(t, user, "reading email")
	assert.Contains(t, user, "Duration: 90 minutes")

	goalSystem, goalUser := buildClassifyPrompt(a, &domain.GoalContext{Title: "Deep Work", Type: domain.GoalLongTerm})
	assert.Contains(t, goalSystem, "goal-relevance")
	assert.Contains(t, goalUser, `"Deep Work"`)
	assert.Contains(t, goalUser, "long_term")
}
