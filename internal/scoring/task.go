package scoring

import (
	"fmt"
	"strings"

	"github.com/uiiaa/signoise/internal/domain"
)

const (
	defaultImpact = 5
	defaultEffort = 5

	leverageHigh = 1.5
	leverageLow  = 0.5
)

// taskContribution is one rule that fired during task scoring, kept
// with its point delta so the explanation can show the arithmetic.
type taskContribution struct {
	delta  int
	detail string
}

// ScoreTask applies the additive task rules: base 0, +40 revenue,
// +30 high / +15 medium priority, +20 urgent+important / +10 important,
// +-10 leverage, clamped to [0,100]. Missing impact/effort default to 5;
// effort is floored at 1 so leverage never divides by zero.
func ScoreTask(t *domain.KanbanTask) domain.ClassificationResult {
	score, contributions := scoreTaskRules(t)
	score = Clamp(score)

	reasons := make([]string, len(contributions))
	for i, c := range contributions {
		reasons[i] = c.detail
	}

	confidence := 0.5
	if len(contributions) > 2 {
		confidence = 0.8
	}

	return domain.ClassificationResult{
		Score:          score,
		Classification: ClassifyTaskScore(score),
		Confidence:     confidence,
		Reasoning:      strings.Join(reasons, "; "),
		Method:         domain.MethodRules,
	}
}

// ExplainTask renders a display/audit explanation for a task's score,
// listing every contributing rule with its point delta and the leverage
// figures when the impact/effort rule fired.
func ExplainTask(t *domain.KanbanTask, result domain.ClassificationResult) string {
	_, contributions := scoreTaskRules(t)

	var b strings.Builder
	fmt.Fprintf(&b, "Score %d (%s):", result.Score, result.Classification)
	if len(contributions) == 0 {
		b.WriteString(" no scoring rules fired")
		return b.String()
	}
	for _, c := range contributions {
		fmt.Fprintf(&b, "\n  %+d  %s", c.delta, c.detail)
	}
	return b.String()
}

func scoreTaskRules(t *domain.KanbanTask) (int, []taskContribution) {
	score := 0
	var fired []taskContribution

	add := func(delta int, detail string) {
		score += delta
		fired = append(fired, taskContribution{delta: delta, detail: detail})
	}

	if t.GeneratesRevenue {
		add(40, "generates revenue")
	}

	switch t.Priority {
	case domain.PriorityHigh:
		add(30, "high priority")
	case domain.PriorityMedium:
		add(15, "medium priority")
	}

	if t.Urgent && t.Important {
		add(20, "urgent and important")
	} else if t.Important {
		add(10, "important")
	}

	impact, effort := t.Impact, t.Effort
	if impact == 0 {
		impact = defaultImpact
	}
	if effort == 0 {
		effort = defaultEffort
	}
	if effort < 1 {
		effort = 1
	}

	leverage := float64(impact) / float64(effort)
	if leverage > leverageHigh {
		add(10, fmt.Sprintf("high leverage (impact %d / effort %d = %.1f)", impact, effort, leverage))
	} else if leverage < leverageLow {
		add(-10, fmt.Sprintf("low leverage (impact %d / effort %d = %.1f)", impact, effort, leverage))
	}

	return score, fired
}
