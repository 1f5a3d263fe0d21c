package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/uiiaa/signoise/internal/cli/formatter"
	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/intelligence"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive overview of activities, tasks and stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("dashboard requires an interactive terminal")
			}

			model := newDashboardModel(app)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// dashboardData holds the loaded data for the dashboard.
type dashboardData struct {
	activities []*domain.Activity
	tasks      []*domain.KanbanTask
	trace      intelligence.WeeklyTrace
}

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

type dashboardKeys struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// dashboardModel is a split view: recent activities on the left, the
// weekly trace and top tasks on the right.
type dashboardModel struct {
	app     *App
	keys    dashboardKeys
	data    *dashboardData
	loading bool
	err     error
	cursor  int
	width   int
}

func newDashboardModel(app *App) *dashboardModel {
	return &dashboardModel{
		app:     app,
		keys:    newDashboardKeys(),
		loading: true,
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *dashboardModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()

		activities, err := app.Activities.ListRecent(ctx, 7)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		tasks, err := app.Tasks.List(ctx, "")
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		trace, err := app.Stats.WeeklyTrace(ctx, 7)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{data: dashboardData{
			activities: activities,
			tasks:      tasks,
			trace:      trace,
		}}
	}
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.data = &msg.data
		if m.cursor >= len(m.data.activities) {
			m.cursor = max(0, len(m.data.activities)-1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.err = nil
			return m, m.loadData()
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.data != nil && m.cursor < len(m.data.activities)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

const dashLeftPaneWidth = 52

func (m *dashboardModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}
	if m.data == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	left := m.renderActivities()
	right := m.renderSummary()

	if m.width >= 90 {
		leftCol := lipgloss.NewStyle().Width(dashLeftPaneWidth).Render(left)
		divider := formatter.StyleDim.Render("│")
		rightCol := lipgloss.NewStyle().Width(m.width - dashLeftPaneWidth - 3).Render(right)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol))
	} else {
		b.WriteString(left + "\n" + right)
	}

	b.WriteString("\n\n  " + formatter.Dim("↑/↓ select · r refresh · q quit"))
	return b.String()
}

func (m *dashboardModel) renderActivities() string {
	var b strings.Builder
	b.WriteString("  " + formatter.StyleHeader.Render("RECENT ACTIVITY") + "\n\n")

	if len(m.data.activities) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing logged this week."))
		return b.String()
	}

	for i, a := range m.data.activities {
		cursor := "  "
		style := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}

		desc := a.Description
		if len(desc) > 30 {
			desc = desc[:29] + "…"
		}

		dot := formatter.ClassColor(a.Result.Classification).Render("●")
		b.WriteString(fmt.Sprintf("  %s%s %s %s\n",
			cursor, dot, style.Render(padRight(desc, 30)),
			formatter.Dim(formatter.FormatMinutes(a.DurationMinutes))))
	}

	// Reasoning for the selected activity.
	if m.cursor < len(m.data.activities) {
		selected := m.data.activities[m.cursor]
		if selected.Result.Reasoning != "" {
			b.WriteString("\n  " + formatter.Dim(selected.Result.Reasoning) + "\n")
		}
	}

	return b.String()
}

func (m *dashboardModel) renderSummary() string {
	var b strings.Builder
	trace := m.data.trace

	b.WriteString(formatter.StyleHeader.Render("THIS WEEK") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", formatter.StyleGreen.Render("signal "),
		formatter.FormatMinutes(trace.SignalMinutes)))
	b.WriteString(fmt.Sprintf("%s %s\n", formatter.StyleRed.Render("noise  "),
		formatter.FormatMinutes(trace.NoiseMinutes)))
	b.WriteString(fmt.Sprintf("%s %s\n\n", formatter.StyleYellow.Render("neutral"),
		formatter.FormatMinutes(trace.NeutralMinutes)))

	b.WriteString(formatter.StyleHeader.Render("TOP TASKS") + "\n\n")
	if len(m.data.tasks) == 0 {
		b.WriteString(formatter.Dim("No open tasks."))
		return b.String()
	}

	shown := 0
	for _, t := range m.data.tasks {
		if t.Status == domain.TaskDone {
			continue
		}
		dot := formatter.ClassColor(t.Result.Classification).Render("●")
		b.WriteString(fmt.Sprintf("%s %s %s\n", dot,
			formatter.StyleFg.Render(t.Title),
			formatter.Dim(fmt.Sprintf("(%d)", t.Result.Score))))
		shown++
		if shown == 5 {
			break
		}
	}
	if shown == 0 {
		b.WriteString(formatter.Dim("Everything is done."))
	}

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
