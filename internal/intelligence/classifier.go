// Package intelligence hosts the generative tier of the classifier: the
// adapter that turns an activity into a strict-JSON scoring prompt, and
// the dispatch policy that decides when the rule result stands on its
// own. The rule tier always runs first and is the fallback for every
// AI-tier failure, so a well-formed input never sees a classification
// error.
package intelligence

import (
	"context"

	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/llm"
	"github.com/uiiaa/signoise/internal/scoring"
)

// Classifier runs the full two-tier classification protocol.
type Classifier interface {
	// ClassifyActivity applies the dispatch policy: rules first, AI
	// when rule confidence is low or goal context is present, rule
	// fallback on any AI failure. Always returns a complete result.
	ClassifyActivity(ctx context.Context, a *domain.Activity, goal *domain.GoalContext) domain.ClassificationResult

	// ClassifyWithAI consults only the generative tier. A nil error
	// guarantees a usable score; any failure (network, timeout,
	// malformed JSON, missing score) is returned for the caller to
	// treat as non-fatal.
	ClassifyWithAI(ctx context.Context, a *domain.Activity, goal *domain.GoalContext) (*AIScore, error)
}

type classifier struct {
	client llm.Client
	scorer *scoring.ActivityScorer
}

// NewClassifier creates a Classifier backed by the given model client.
func NewClassifier(client llm.Client, scorer *scoring.ActivityScorer) Classifier {
	return &classifier{client: client, scorer: scorer}
}

func (c *classifier) ClassifyWithAI(ctx context.Context, a *domain.Activity, goal *domain.GoalContext) (*AIScore, error) {
	system, user := buildClassifyPrompt(a, goal)

	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskClassify,
		SystemPrompt: system,
		UserPrompt:   user,
	})
	if err != nil {
		return nil, err
	}

	payload, err := llm.ExtractJSON[AIScore](resp.Text, validateAIScore)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *classifier) ClassifyActivity(ctx context.Context, a *domain.Activity, goal *domain.GoalContext) domain.ClassificationResult {
	rule := c.scorer.Score(a)

	// Confident rules and no goal context: the rule result stands.
	if rule.Confidence >= confidentRules && goal == nil {
		return rule
	}

	ai, err := c.ClassifyWithAI(ctx, a, goal)
	if err != nil {
		// AI failures are logged by the client observer; the rule
		// result is returned unchanged.
		return rule
	}

	score := scoring.Clamp(*ai.Score)
	result := domain.ClassificationResult{
		Score:          score,
		Classification: scoring.ClassifyActivityScore(score),
		Reasoning:      ai.Reasoning,
		Method:         domain.MethodAI,
	}
	if goal != nil {
		result.Method = domain.MethodAIWithGoal
	}
	if rule.Confidence >= confidentRules {
		result.Confidence = aiWithGoalHigh
	} else {
		result.Confidence = max(rule.Confidence, aiFloor)
	}
	return result
}
