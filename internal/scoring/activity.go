package scoring

import (
	"strings"

	"github.com/uiiaa/signoise/internal/domain"
)

const activityBaseScore = 50

// ActivityScorer scores free-form activity log entries. Detectors are
// injected so tests and future replacements can swap the keyword
// matchers without changing the rule flow.
type ActivityScorer struct {
	goal        TextSignalDetector
	impact      TextSignalDetector
	distraction TextSignalDetector
}

// NewActivityScorer builds a scorer with the default keyword detectors.
func NewActivityScorer() *ActivityScorer {
	g, i, d := DefaultDetectors()
	return &ActivityScorer{goal: g, impact: i, distraction: d}
}

// NewActivityScorerWith builds a scorer with custom detectors.
func NewActivityScorerWith(goal, impact, distraction TextSignalDetector) *ActivityScorer {
	return &ActivityScorer{goal: goal, impact: impact, distraction: distraction}
}

type activityRule func(*ActivityScorer, *domain.Activity) (delta int, reason string)

// Rules are evaluated in a fixed order; reasoning preserves that order.
var activityRules = []activityRule{
	(*ActivityScorer).ruleAdvancesGoal,
	(*ActivityScorer).ruleEnergizing,
	(*ActivityScorer).ruleShortHighImpact,
	(*ActivityScorer).ruleDistraction,
}

// Score applies the additive activity rules: base 50, +30 goal keyword,
// +20 energizing, +20 short high-impact, -40 distraction, clamped to
// [0,100]. Confidence is 0.8 when more than two rules fired, else 0.5.
func (s *ActivityScorer) Score(a *domain.Activity) domain.ClassificationResult {
	score := activityBaseScore
	var reasons []string

	for _, rule := range activityRules {
		delta, reason := rule(s, a)
		if reason == "" {
			continue
		}
		score += delta
		reasons = append(reasons, reason)
	}

	score = Clamp(score)

	confidence := 0.5
	if len(reasons) > 2 {
		confidence = 0.8
	}

	return domain.ClassificationResult{
		Score:          score,
		Classification: ClassifyActivityScore(score),
		Confidence:     confidence,
		Reasoning:      strings.Join(reasons, "; "),
		Method:         domain.MethodRules,
	}
}

func (s *ActivityScorer) ruleAdvancesGoal(a *domain.Activity) (int, string) {
	if s.goal.Detect(a.Description) {
		return 30, "advances a goal"
	}
	return 0, ""
}

func (s *ActivityScorer) ruleEnergizing(a *domain.Activity) (int, string) {
	if a.Energizing() {
		return 20, "energizing"
	}
	return 0, ""
}

func (s *ActivityScorer) ruleShortHighImpact(a *domain.Activity) (int, string) {
	if a.DurationMinutes < 60 && s.impact.Detect(a.Description) {
		return 20, "short, high-impact"
	}
	return 0, ""
}

func (s *ActivityScorer) ruleDistraction(a *domain.Activity) (int, string) {
	if s.distraction.Detect(a.Description) {
		return -40, "known distraction"
	}
	return 0, ""
}
