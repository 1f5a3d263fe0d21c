package intelligence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/uiiaa/signoise/internal/llm"
)

// Coach produces a weekly coaching summary from aggregate stats.
type Coach interface {
	// WeeklyReview narrates the given trace. Never fails: when the
	// model is unavailable or returns garbage, a deterministic summary
	// built directly from the trace is returned instead.
	WeeklyReview(ctx context.Context, trace WeeklyTrace) *CoachAdvice
}

type coach struct {
	client llm.Client
}

// NewCoach creates a Coach backed by a model client.
func NewCoach(client llm.Client) Coach {
	return &coach{client: client}
}

func (c *coach) WeeklyReview(ctx context.Context, trace WeeklyTrace) *CoachAdvice {
	traceJSON, err := json.MarshalIndent(trace, "", "  ")
	if err != nil {
		return DeterministicWeeklyReview(trace)
	}

	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCoach,
		SystemPrompt: coachSystemPrompt,
		UserPrompt:   "Here is the week's trace:\n\n" + string(traceJSON),
	})
	if err != nil {
		return DeterministicWeeklyReview(trace)
	}

	advice, err := llm.ExtractJSON[CoachAdvice](resp.Text, func(a CoachAdvice) error {
		if a.Summary == "" {
			return fmt.Errorf("summary is empty")
		}
		return nil
	})
	if err != nil {
		return DeterministicWeeklyReview(trace)
	}

	return &advice
}
