package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uiiaa/signoise/internal/cli/formatter"
	"github.com/uiiaa/signoise/internal/domain"
)

var goalHorizons = map[string]domain.GoalType{
	"short":  domain.GoalShortTerm,
	"medium": domain.GoalMediumTerm,
	"long":   domain.GoalLongTerm,
}

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals that activities can advance",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var horizon string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalType, ok := goalHorizons[horizon]
			if !ok {
				return fmt.Errorf("invalid horizon %q (short|medium|long)", horizon)
			}

			g, err := app.Goals.Create(context.Background(), args[0], goalType)
			if err != nil {
				return err
			}

			fmt.Printf("Created goal %s %s\n", formatter.TruncID(g.ID), formatter.Bold(g.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&horizon, "horizon", "short", "Goal horizon (short|medium|long)")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.List(context.Background())
			if err != nil {
				return err
			}

			if len(goals) == 0 {
				fmt.Println("No goals found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatGoalList(goals))
			return nil
		},
	}
}
