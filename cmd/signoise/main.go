package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/uiiaa/signoise/internal/cli"
	"github.com/uiiaa/signoise/internal/db"
	"github.com/uiiaa/signoise/internal/intelligence"
	"github.com/uiiaa/signoise/internal/llm"
	"github.com/uiiaa/signoise/internal/repository"
	"github.com/uiiaa/signoise/internal/scoring"
	"github.com/uiiaa/signoise/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.signoise/signoise.db
	dbPath := os.Getenv("SIGNOISE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".signoise", "signoise.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	activityRepo := repository.NewSQLiteActivityRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	habitRepo := repository.NewSQLiteHabitRepo(database)

	// Wire the classifier: rule tier always, AI tier when enabled.
	scorer := scoring.NewActivityScorer()
	llmCfg := llm.LoadConfig()

	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}

	classifier := intelligence.NewRulesOnlyClassifier(scorer)
	coach := intelligence.NewDeterministicCoach()
	if llmCfg.Enabled {
		llmClient := llm.NewOllamaClient(llmCfg, observer)
		classifier = intelligence.NewClassifier(llmClient, scorer)
		coach = intelligence.NewCoach(llmClient)
	}

	// Wire services
	habitSvc := service.NewHabitService(habitRepo)

	app := &cli.App{
		Activities: service.NewActivityService(activityRepo, goalRepo, classifier),
		Tasks:      service.NewTaskService(taskRepo),
		Goals:      service.NewGoalService(goalRepo),
		Habits:     habitSvc,
		Stats:      service.NewStatsService(activityRepo, habitSvc),
		Coach:      coach,
	}

	// Detect interactive terminal for forms and the dashboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
