package domain

import "time"

// Goal is a named objective that activities can reference.
type Goal struct {
	ID        string
	Title     string
	Type      GoalType
	CreatedAt time.Time
}

// Context returns the goal view used for AI prompt building.
func (g *Goal) Context() *GoalContext {
	return &GoalContext{Title: g.Title, Type: g.Type}
}
