package formatter

import (
	"strings"

	"github.com/uiiaa/signoise/internal/domain"
)

// FormatGoalList renders goals in a bordered table.
func FormatGoalList(goals []*domain.Goal) string {
	headers := []string{"ID", "GOAL", "HORIZON", "CREATED"}
	rows := make([][]string, 0, len(goals))

	for _, g := range goals {
		rows = append(rows, []string{
			TruncID(g.ID),
			Bold(g.Title),
			horizonBadge(g.Type),
			Dim(HumanTimestamp(g.CreatedAt)),
		})
	}

	return RenderBox("Goals", RenderTable(headers, rows))
}

func horizonBadge(t domain.GoalType) string {
	label := strings.ReplaceAll(string(t), "_", " ")
	switch t {
	case domain.GoalShortTerm:
		return StyleBlue.Render(label)
	case domain.GoalMediumTerm:
		return StylePurple.Render(label)
	case domain.GoalLongTerm:
		return StyleHeader.Render(label)
	default:
		return StyleDim.Render(label)
	}
}
