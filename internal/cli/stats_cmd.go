package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uiiaa/signoise/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the signal/noise breakdown for recent days",
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, err := app.Stats.WeeklyTrace(context.Background(), days)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatWeeklyTrace(trace))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Period length in days")

	return cmd
}

func newCoachCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Get a narrative weekly review with suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			trace, err := app.Stats.WeeklyTrace(ctx, days)
			if err != nil {
				return err
			}

			advice := app.Coach.WeeklyReview(ctx, trace)
			fmt.Printf("%s\n", formatter.FormatCoachAdvice(advice))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Period length in days")

	return cmd
}
