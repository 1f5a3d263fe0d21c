package domain

// ClassificationResult is the outcome of scoring one activity or task.
// It is embedded into the owning record rather than stored on its own.
type ClassificationResult struct {
	Score          int            // always clamped to [0,100]
	Classification Classification // derived from Score by fixed thresholds
	Confidence     float64        // coarse agreement indicator, not a probability
	Reasoning      string         // human-readable trace of the rules that fired
	Method         Method
}

// GoalContext is the minimal goal view passed to the AI tier for
// goal-aware prompting. The caller resolves it; the classifier never
// queries storage.
type GoalContext struct {
	Title string
	Type  GoalType
}
