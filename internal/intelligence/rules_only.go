package intelligence

import (
	"context"
	"errors"

	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/scoring"
)

// ErrAIDisabled is returned by ClassifyWithAI when the generative tier
// is not configured.
var ErrAIDisabled = errors.New("ai tier is disabled")

type rulesOnlyClassifier struct {
	scorer *scoring.ActivityScorer
}

// NewRulesOnlyClassifier returns a Classifier that never consults the
// generative tier. Used when the LLM subsystem is disabled, so the rest
// of the application keeps a single classification entry point.
func NewRulesOnlyClassifier(scorer *scoring.ActivityScorer) Classifier {
	return &rulesOnlyClassifier{scorer: scorer}
}

func (c *rulesOnlyClassifier) ClassifyActivity(_ context.Context, a *domain.Activity, _ *domain.GoalContext) domain.ClassificationResult {
	return c.scorer.Score(a)
}

func (c *rulesOnlyClassifier) ClassifyWithAI(context.Context, *domain.Activity, *domain.GoalContext) (*AIScore, error) {
	return nil, ErrAIDisabled
}
