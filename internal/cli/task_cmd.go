package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uiiaa/signoise/internal/cli/formatter"
	"github.com/uiiaa/signoise/internal/domain"
	"github.com/uiiaa/signoise/internal/service"
)

// resolveTaskID resolves a task identifier: full UUID first, then a
// unique prefix.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx, "")
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage scored kanban tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskMoveCmd(app),
		newTaskSetCmd(app),
		newTaskRemoveCmd(app),
		newTaskExplainCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var input service.CreateTaskInput

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a task; it is scored immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Title = args[0]

			t, err := app.Tasks.Create(context.Background(), input)
			if err != nil {
				return err
			}

			fmt.Printf("Created task %s %s %s\n",
				formatter.TruncID(t.ID),
				formatter.Bold(t.Title),
				formatter.ClassBadge(t.Result.Classification))
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Description, "desc", "", "Task description")
	cmd.Flags().StringVar(&input.Project, "project", "", "Project label")
	cmd.Flags().StringVar(&input.Priority, "priority", "low", "Priority (high|medium|low)")
	cmd.Flags().BoolVar(&input.GeneratesRevenue, "revenue", false, "Task generates revenue")
	cmd.Flags().BoolVar(&input.Urgent, "urgent", false, "Task is urgent")
	cmd.Flags().BoolVar(&input.Important, "important", false, "Task is important")
	cmd.Flags().IntVar(&input.Impact, "impact", 0, "Estimated impact (1-10)")
	cmd.Flags().IntVar(&input.Effort, "effort", 0, "Estimated effort (1-10)")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var status string
	var board bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, highest score first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" && !domain.ValidTaskStatuses[status] {
				return fmt.Errorf("invalid status %q (todo|progress|done)", status)
			}

			tasks, err := app.Tasks.List(context.Background(), domain.TaskStatus(status))
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			if board {
				fmt.Printf("%s\n", formatter.FormatTaskBoard(tasks))
			} else {
				fmt.Printf("%s\n", formatter.FormatTaskList(tasks))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by column (todo|progress|done)")
	cmd.Flags().BoolVar(&board, "board", false, "Group by kanban column")

	return cmd
}

func newTaskMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move ID STATUS",
		Short: "Move a task to another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			t, err := app.Tasks.Move(ctx, taskID, domain.TaskStatus(args[1]))
			if err != nil {
				return err
			}

			fmt.Printf("Moved %s to %s\n", formatter.Bold(t.Title), formatter.StatusPill(t.Status))
			return nil
		},
	}
}

func newTaskSetCmd(app *App) *cobra.Command {
	var title, desc, priority string
	var revenue, urgent, important bool
	var impact, effort int

	cmd := &cobra.Command{
		Use:   "set ID",
		Short: "Edit task fields; the score is recomputed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var input service.UpdateTaskInput
			if cmd.Flags().Changed("title") {
				input.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				input.Description = &desc
			}
			if cmd.Flags().Changed("priority") {
				input.Priority = &priority
			}
			if cmd.Flags().Changed("revenue") {
				input.GeneratesRevenue = &revenue
			}
			if cmd.Flags().Changed("urgent") {
				input.Urgent = &urgent
			}
			if cmd.Flags().Changed("important") {
				input.Important = &important
			}
			if cmd.Flags().Changed("impact") {
				input.Impact = &impact
			}
			if cmd.Flags().Changed("effort") {
				input.Effort = &effort
			}

			t, err := app.Tasks.Update(ctx, taskID, input)
			if err != nil {
				return err
			}

			fmt.Printf("Updated %s %s %s\n",
				formatter.Bold(t.Title),
				formatter.ScoreBar(t.Result.Score, 10),
				formatter.ClassBadge(t.Result.Classification))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (high|medium|low)")
	cmd.Flags().BoolVar(&revenue, "revenue", false, "Task generates revenue")
	cmd.Flags().BoolVar(&urgent, "urgent", false, "Task is urgent")
	cmd.Flags().BoolVar(&important, "important", false, "Task is important")
	cmd.Flags().IntVar(&impact, "impact", 0, "Estimated impact (1-10)")
	cmd.Flags().IntVar(&effort, "effort", 0, "Estimated effort (1-10)")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a task from the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Tasks.Remove(ctx, taskID); err != nil {
				return err
			}

			fmt.Printf("Removed task %s\n", taskID)
			return nil
		},
	}
}

func newTaskExplainCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain ID",
		Short: "Show the score breakdown for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			explanation, err := app.Tasks.Explain(ctx, taskID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.RenderBox("Score breakdown", explanation))
			return nil
		},
	}
}
