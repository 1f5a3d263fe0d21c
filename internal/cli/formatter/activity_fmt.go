package formatter

import (
	"fmt"
	"strings"

	"github.com/uiiaa/signoise/internal/domain"
)

// FormatActivityList renders recent activities inside a bordered box,
// most recent first as delivered by the repository.
func FormatActivityList(activities []*domain.Activity) string {
	headers := []string{"ID", "ACTIVITY", "TIME", "SCORE", "VERDICT", "VIA", "LOGGED"}
	rows := make([][]string, 0, len(activities))

	for _, a := range activities {
		rows = append(rows, []string{
			TruncID(a.ID),
			Bold(truncate(a.Description, 40)),
			StyleFg.Render(FormatMinutes(a.DurationMinutes)),
			ScoreBar(a.Result.Score, 10),
			ClassBadge(a.Result.Classification),
			MethodBadge(a.Result.Method),
			Dim(HumanTimestamp(a.CreatedAt)),
		})
	}

	return RenderBox("Activities", RenderTable(headers, rows))
}

// FormatActivityDetail renders one activity as a card with the full
// reasoning trace.
func FormatActivityDetail(a *domain.Activity, goal *domain.Goal) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(a.Description) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("VERDICT"), ClassBadge(a.Result.Classification)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SCORE  "), ScoreBar(a.Result.Score, 14)))
	b.WriteString(fmt.Sprintf("%s  %s %s\n", StyleDim.Render("VIA    "),
		MethodBadge(a.Result.Method),
		Dim(fmt.Sprintf("(confidence %.1f)", a.Result.Confidence))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TIME   "), StyleFg.Render(FormatMinutes(a.DurationMinutes))))

	if a.EnergyBefore > 0 || a.EnergyAfter > 0 {
		arrow := "→"
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ENERGY "),
			StyleFg.Render(fmt.Sprintf("%d %s %d", a.EnergyBefore, arrow, a.EnergyAfter))))
	}
	if goal != nil {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("GOAL   "), StylePurple.Render(goal.Title)))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("LOGGED "), Dim(HumanTimestamp(a.CreatedAt))))

	if a.Result.Reasoning != "" {
		b.WriteString("\n" + Header("Reasoning") + "\n")
		for _, line := range strings.Split(a.Result.Reasoning, "; ") {
			b.WriteString(Dim("· ") + StyleFg.Render(line) + "\n")
		}
	}

	return RenderBox("", b.String())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
