package intelligence

import (
	"fmt"
	"strings"

	"github.com/uiiaa/signoise/internal/domain"
)

// classifySystemPrompt instructs the model to score one activity and
// return strictly a JSON object. Kept deliberately rigid: the adapter
// parses nothing but the JSON fragment out of the response.
const classifySystemPrompt = `You are a productivity classifier. You judge whether an activity is "signal" (meaningfully advances the user's goals) or "noise" (a distraction or non-contributory).

You must output ONLY a JSON object with these exact fields:
- score: integer 0 to 100 (100 = pure signal, 0 = pure noise, 50 = neutral)
- reasoning: one or two sentences explaining the score

Scoring guidance:
- Deliberate, focused work toward a stated goal scores high.
- Passive consumption and context-switching score low.
- Rest and recovery that restores energy is neutral to mildly positive.

CRITICAL RULES:
1. Output ONLY the JSON object, no markdown, no explanation around it
2. Use strict JSON numeric literals (e.g., 85, never "85")`

// classifyGoalAddendum is appended to the system prompt when the caller
// supplies goal context.
const classifyGoalAddendum = `
3. The user linked this activity to a goal. Weight goal-relevance more heavily than the generic guidance: direct progress on the stated goal should score 80+, unrelated activity at most 50.`

// buildClassifyPrompt renders the user prompt for one activity,
// embedding the goal context when present.
func buildClassifyPrompt(a *domain.Activity, goal *domain.GoalContext) (system, user string) {
	system = classifySystemPrompt
	if goal != nil {
		system += classifyGoalAddendum
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Activity: %s\n", a.Description)
	fmt.Fprintf(&b, "Duration: %d minutes\n", a.DurationMinutes)
	fmt.Fprintf(&b, "Energy before: %d/10, after: %d/10\n", a.EnergyBefore, a.EnergyAfter)
	if goal != nil {
		fmt.Fprintf(&b, "Related goal: %q (%s)\n", goal.Title, goal.Type)
	}
	b.WriteString("\nScore this activity.")

	return system, b.String()
}

// coachSystemPrompt instructs the model to narrate a weekly review from
// the aggregate trace.
const coachSystemPrompt = `You are a productivity coach reviewing a week of classified activity data.
You will receive a JSON trace of aggregate numbers. Ground every statement in those numbers; do not invent data.

You must output ONLY a JSON object with these exact fields:
- summary: 2-4 sentences about how the week went, citing the minutes from the trace
- suggestions: array of 2-4 short, concrete suggestions for next week
- confidence: number 0 to 1

Output ONLY the JSON object, no markdown.`
