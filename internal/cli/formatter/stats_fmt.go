package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/uiiaa/signoise/internal/intelligence"
	"github.com/uiiaa/signoise/internal/service"
)

// FormatWeeklyTrace renders the stats card: minutes per verdict, the
// signal ratio bar, top noise sources, and habit streaks.
func FormatWeeklyTrace(trace intelligence.WeeklyTrace) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Last %d days · %d activities\n\n", trace.PeriodDays, trace.ActivityCount))

	total := trace.SignalMinutes + trace.NoiseMinutes + trace.NeutralMinutes
	if total == 0 {
		b.WriteString(Dim("Nothing logged yet.") + "\n")
		return RenderBox("Stats", b.String())
	}

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleGreen.Render("SIGNAL "), StyleFg.Render(FormatMinutes(trace.SignalMinutes))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleRed.Render("NOISE  "), StyleFg.Render(FormatMinutes(trace.NoiseMinutes))))
	b.WriteString(fmt.Sprintf("%s  %s\n\n", StyleYellow.Render("NEUTRAL"), StyleFg.Render(FormatMinutes(trace.NeutralMinutes))))

	ratio := trace.SignalRatio()
	b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render("signal ratio"), ratioBar(ratio, 20)))

	if len(trace.TopNoiseSources) > 0 {
		b.WriteString("\n" + Header("Top noise") + "\n")
		for _, src := range trace.TopNoiseSources {
			b.WriteString(StyleRed.Render("✖ ") + StyleFg.Render(src) + "\n")
		}
	}

	if len(trace.HabitStreaks) > 0 {
		b.WriteString("\n" + Header("Habits") + "\n")
		b.WriteString(formatStreaks(trace.HabitStreaks))
	}

	return RenderBox("Stats", b.String())
}

// FormatHabitList renders habits with their current streaks.
func FormatHabitList(statuses []service.HabitStatus) string {
	headers := []string{"ID", "HABIT", "STREAK"}
	rows := make([][]string, 0, len(statuses))

	for _, st := range statuses {
		rows = append(rows, []string{
			TruncID(st.Habit.ID),
			Bold(st.Habit.Name),
			streakLabel(st.Streak),
		})
	}

	return RenderBox("Habits", RenderTable(headers, rows))
}

// FormatCoachAdvice renders the weekly coaching narrative.
func FormatCoachAdvice(advice *intelligence.CoachAdvice) string {
	var b strings.Builder

	b.WriteString(StyleFg.Render(advice.Summary) + "\n")

	if len(advice.Suggestions) > 0 {
		b.WriteString("\n" + Header("Suggestions") + "\n")
		for _, s := range advice.Suggestions {
			b.WriteString(StyleGreen.Render("→ ") + StyleFg.Render(s) + "\n")
		}
	}

	b.WriteString("\n" + Dim(fmt.Sprintf("confidence %.1f", advice.Confidence)))

	return RenderBox("Weekly review", b.String())
}

func formatStreaks(streaks map[string]int) string {
	names := make([]string, 0, len(streaks))
	for name := range streaks {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleFg.Render(name), streakLabel(streaks[name])))
	}
	return b.String()
}

func streakLabel(streak int) string {
	switch {
	case streak >= 7:
		return StyleGreen.Render(fmt.Sprintf("▲ %dd", streak))
	case streak > 0:
		return StyleYellow.Render(fmt.Sprintf("%dd", streak))
	default:
		return StyleDim.Render("--")
	}
}

func ratioBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if ratio < 0.33 {
		style = StyleRed
	} else if ratio < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), ratio*100)
}
