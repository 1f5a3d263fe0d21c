package cli

import (
	"github.com/spf13/cobra"
	"github.com/uiiaa/signoise/internal/intelligence"
	"github.com/uiiaa/signoise/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Activities service.ActivityService
	Tasks      service.TaskService
	Goals      service.GoalService
	Habits     service.HabitService
	Stats      service.StatsService
	Coach      intelligence.Coach

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms and the dashboard require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "signoise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "signoise",
		Short: "Signal/noise tracker for activities, tasks, goals and habits",
	}

	root.AddCommand(
		newActivityCmd(app),
		newTaskCmd(app),
		newGoalCmd(app),
		newHabitCmd(app),
		newStatsCmd(app),
		newCoachCmd(app),
		newDashboardCmd(app),
	)

	return root
}
