package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/uiiaa/signoise/internal/cli/formatter"
	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/service"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Log and inspect classified activities",
	}

	cmd.AddCommand(
		newActivityLogCmd(app),
		newActivityListCmd(app),
		newActivityReclassifyCmd(app),
	)

	return cmd
}

func newActivityLogCmd(app *App) *cobra.Command {
	var description, goalID string
	var minutes, energyBefore, energyAfter int

	cmd := &cobra.Command{
		Use:   "log [DESCRIPTION]",
		Short: "Log an activity and classify it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) > 0 {
				description = args[0]
			}

			// Interactive form when no description was given on a TTY.
			if description == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("activity description is required")
				}
				input, err := runActivityLogForm(ctx, app)
				if err != nil {
					return err
				}
				return logAndShow(ctx, app, input)
			}

			return logAndShow(ctx, app, service.LogActivityInput{
				Description:     description,
				DurationMinutes: minutes,
				EnergyBefore:    energyBefore,
				EnergyAfter:     energyAfter,
				GoalID:          goalID,
			})
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Duration in minutes")
	cmd.Flags().IntVar(&energyBefore, "energy-before", 0, "Energy before (1-10)")
	cmd.Flags().IntVar(&energyAfter, "energy-after", 0, "Energy after (1-10)")
	cmd.Flags().StringVar(&goalID, "goal", "", "Goal ID this activity advances")

	return cmd
}

func logAndShow(ctx context.Context, app *App, input service.LogActivityInput) error {
	a, err := app.Activities.Log(ctx, input)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", formatter.FormatActivityDetail(a, activityGoal(ctx, app, a)))
	return nil
}

// runActivityLogForm collects a full activity entry interactively.
func runActivityLogForm(ctx context.Context, app *App) (service.LogActivityInput, error) {
	var input service.LogActivityInput
	var description, minutes, before, after string

	minutes = "30"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What did you do?").
				Placeholder("deep work on the launch plan").
				Value(&description).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("describe the activity")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("30").
				Value(&minutes).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Energy before (1-10, optional)").
				Value(&before).
				Validate(validateOptionalOrdinal),
			huh.NewInput().
				Title("Energy after (1-10, optional)").
				Value(&after).
				Validate(validateOptionalOrdinal),
		),
	).WithTheme(signoiseHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return input, err
	}

	if goalForm := wizardSelectGoal(ctx, app, &input.GoalID); goalForm != nil {
		if err := goalForm.Run(); err != nil {
			return input, err
		}
	}

	input.Description = description
	input.DurationMinutes = parsePositiveInt(minutes, 30)
	input.EnergyBefore, _ = strconv.Atoi(before)
	input.EnergyAfter, _ = strconv.Atoi(after)
	return input, nil
}

func newActivityListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.ListRecent(context.Background(), days)
			if err != nil {
				return err
			}

			if len(activities) == 0 {
				fmt.Println("No activities logged.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatActivityList(activities))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many days back to list")

	return cmd
}

func newActivityReclassifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reclassify ID",
		Short: "Re-run classification for an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := app.Activities.Reclassify(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatActivityDetail(a, activityGoal(ctx, app, a)))
			return nil
		},
	}
}

// activityGoal resolves the activity's goal for display, tolerating
// dangling references.
func activityGoal(ctx context.Context, app *App, a *domain.Activity) *domain.Goal {
	if a.GoalID == "" {
		return nil
	}
	goals, err := app.Goals.List(ctx)
	if err != nil {
		return nil
	}
	for _, g := range goals {
		if g.ID == a.GoalID {
			return g
		}
	}
	return nil
}
