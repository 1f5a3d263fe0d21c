package domain

import "strings"

// Classification is the three-way signal/noise verdict for an activity or task.
type Classification string

const (
	ClassSignal  Classification = "SIGNAL"
	ClassNoise   Classification = "NOISE"
	ClassNeutral Classification = "NEUTRAL"
)

// Method records which tier produced a classification.
type Method string

const (
	MethodRules      Method = "rules"
	MethodAI         Method = "ai"
	MethodAIWithGoal Method = "ai_with_goal"
	MethodManual     Method = "manual"
)

// TaskStatus is the kanban column a task sits in.
type TaskStatus string

const (
	TaskTodo     TaskStatus = "todo"
	TaskProgress TaskStatus = "progress"
	TaskDone     TaskStatus = "done"
)

// ValidTaskStatuses is the canonical set of accepted status strings.
var ValidTaskStatuses = map[string]bool{
	"todo": true, "progress": true, "done": true,
}

// Priority is a task's declared priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// priorityAliases maps accepted input spellings to canonical priorities.
// The Portuguese forms come from data exported by the original tracker.
var priorityAliases = map[string]Priority{
	"high": PriorityHigh, "alta": PriorityHigh,
	"medium": PriorityMedium, "media": PriorityMedium, "média": PriorityMedium,
	"low": PriorityLow, "baixa": PriorityLow,
}

// ParsePriority normalizes a priority string. Unknown values map to
// PriorityLow rather than failing, matching the scorer's best-effort
// posture toward malformed input.
func ParsePriority(s string) Priority {
	if p, ok := priorityAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p
	}
	return PriorityLow
}

// GoalType categorizes a goal's horizon.
type GoalType string

const (
	GoalShortTerm  GoalType = "short_term"
	GoalMediumTerm GoalType = "medium_term"
	GoalLongTerm   GoalType = "long_term"
)
