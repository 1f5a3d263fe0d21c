package formatter

import (
	"strconv"
	"strings"

	"github.com/uiiaa/signoise/internal/domain"
)

// FormatTaskList renders tasks in a bordered table, score-descending as
// delivered by the repository.
func FormatTaskList(tasks []*domain.KanbanTask) string {
	headers := []string{"ID", "TASK", "STATUS", "PRIORITY", "SCORE", "VERDICT"}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		title := Bold(truncate(t.Title, 40))
		if t.Project != "" {
			title += " " + StylePurple.Render("["+t.Project+"]")
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			title,
			StatusPill(t.Status),
			PriorityPill(t.Priority),
			ScoreBar(t.Result.Score, 10),
			ClassBadge(t.Result.Classification),
		})
	}

	return RenderBox("Tasks", RenderTable(headers, rows))
}

// FormatTaskBoard renders tasks grouped by kanban column.
func FormatTaskBoard(tasks []*domain.KanbanTask) string {
	columns := []domain.TaskStatus{domain.TaskTodo, domain.TaskProgress, domain.TaskDone}

	byStatus := make(map[domain.TaskStatus][]*domain.KanbanTask)
	for _, t := range tasks {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StatusPill(col) + "\n")

		colTasks := byStatus[col]
		if len(colTasks) == 0 {
			b.WriteString(Dim("  (empty)") + "\n")
			continue
		}
		for _, t := range colTasks {
			b.WriteString("  " + ClassColor(t.Result.Classification).Render("●") + " ")
			b.WriteString(StyleFg.Render(truncate(t.Title, 50)))
			b.WriteString(" " + Dim(ScoreBarPlain(t.Result.Score)) + "\n")
		}
	}

	return RenderBox("Board", b.String())
}

// ScoreBarPlain renders the numeric score without the bar, for dense views.
func ScoreBarPlain(score int) string {
	return "(" + strconv.Itoa(score) + ")"
}
