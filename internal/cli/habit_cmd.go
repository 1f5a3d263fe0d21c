package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uiiaa/signoise/internal/cli/formatter"
)

func newHabitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Track daily habits and streaks",
	}

	cmd.AddCommand(
		newHabitAddCmd(app),
		newHabitDoneCmd(app),
		newHabitListCmd(app),
	)

	return cmd
}

func newHabitAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Create a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Habits.Create(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Created habit %s %s\n", formatter.TruncID(h.ID), formatter.Bold(h.Name))
			return nil
		},
	}
}

func newHabitDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Check off a habit for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Habits.CheckIn(ctx, habitID); err != nil {
				return err
			}

			fmt.Println("Checked in.")
			return nil
		},
	}
}

func newHabitListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits with current streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := app.Habits.ListWithStreaks(context.Background())
			if err != nil {
				return err
			}

			if len(statuses) == 0 {
				fmt.Println("No habits found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatHabitList(statuses))
			return nil
		},
	}
}

// resolveHabitID resolves a habit by UUID, unique UUID prefix, or exact
// name (case-insensitive).
func resolveHabitID(ctx context.Context, app *App, input string) (string, error) {
	statuses, err := app.Habits.ListWithStreaks(ctx)
	if err != nil {
		return "", err
	}

	for _, st := range statuses {
		if st.Habit.ID == input || strings.EqualFold(st.Habit.Name, input) {
			return st.Habit.ID, nil
		}
	}

	var matches []string
	for _, st := range statuses {
		if strings.HasPrefix(st.Habit.ID, input) {
			matches = append(matches, st.Habit.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("habit not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("habit ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
