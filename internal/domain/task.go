package domain

import "time"

// KanbanTask is a board task. Field edits and status moves trigger a
// re-score; deletion is a soft flag, rows are never physically removed.
type KanbanTask struct {
	ID          string
	Title       string
	Description string
	Project     string
	Status      TaskStatus
	Priority    Priority

	GeneratesRevenue bool
	Urgent           bool
	Important        bool
	Impact           int // 1-10, 0 when unset
	Effort           int // 1-10, 0 when unset

	Result ClassificationResult

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
