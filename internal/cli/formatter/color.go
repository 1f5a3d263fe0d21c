package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/uiiaa/signoise/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ClassColor returns the lipgloss style for a classification verdict.
func ClassColor(c domain.Classification) lipgloss.Style {
	switch c {
	case domain.ClassSignal:
		return StyleGreen
	case domain.ClassNoise:
		return StyleRed
	case domain.ClassNeutral:
		return StyleYellow
	default:
		return StyleDim
	}
}

// ClassBadge returns a colored verdict string such as "● SIGNAL".
func ClassBadge(c domain.Classification) string {
	switch c {
	case domain.ClassSignal:
		return StyleGreen.Render("● SIGNAL")
	case domain.ClassNoise:
		return StyleRed.Render("● NOISE")
	case domain.ClassNeutral:
		return StyleYellow.Render("○ NEUTRAL")
	default:
		return StyleDim.Render("○ UNSCORED")
	}
}

// MethodBadge returns a dimmed label naming the tier that scored a record.
func MethodBadge(m domain.Method) string {
	switch m {
	case domain.MethodAI:
		return StylePurple.Render("ai")
	case domain.MethodAIWithGoal:
		return StylePurple.Render("ai+goal")
	case domain.MethodManual:
		return StyleBlue.Render("manual")
	default:
		return StyleDim.Render("rules")
	}
}

// PriorityPill returns a colored priority indicator.
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ high")
	case domain.PriorityMedium:
		return StyleYellow.Render("■ medium")
	default:
		return StyleDim.Render("▽ low")
	}
}

// StatusPill returns a colored kanban column indicator.
func StatusPill(s domain.TaskStatus) string {
	switch s {
	case domain.TaskTodo:
		return StyleBlue.Render("○ Todo")
	case domain.TaskProgress:
		return StyleGreen.Render("● In Progress")
	case domain.TaskDone:
		return StyleDim.Render("✔ Done")
	default:
		return StyleDim.Render(string(s))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
