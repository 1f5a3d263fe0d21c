package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent
// (CREATE ... IF NOT EXISTS); ALTER TABLE duplicates are tolerated so
// the full list can re-run on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'short_term',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		energy_before INTEGER NOT NULL DEFAULT 5,
		energy_after INTEGER NOT NULL DEFAULT 5,
		goal_id TEXT REFERENCES goals(id) ON DELETE SET NULL,
		impact INTEGER NOT NULL DEFAULT 0,
		effort INTEGER NOT NULL DEFAULT 0,
		score INTEGER NOT NULL DEFAULT 50,
		classification TEXT NOT NULL DEFAULT 'NEUTRAL',
		confidence REAL NOT NULL DEFAULT 0.5,
		reasoning TEXT NOT NULL DEFAULT '',
		method TEXT NOT NULL DEFAULT 'rules',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_created_at ON activities(created_at)`,

	`CREATE TABLE IF NOT EXISTS kanban_tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		project TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'todo',
		priority TEXT NOT NULL DEFAULT 'low',
		generates_revenue INTEGER NOT NULL DEFAULT 0,
		urgent INTEGER NOT NULL DEFAULT 0,
		important INTEGER NOT NULL DEFAULT 0,
		impact INTEGER NOT NULL DEFAULT 0,
		effort INTEGER NOT NULL DEFAULT 0,
		score INTEGER NOT NULL DEFAULT 0,
		classification TEXT NOT NULL DEFAULT 'NOISE',
		confidence REAL NOT NULL DEFAULT 0.5,
		reasoning TEXT NOT NULL DEFAULT '',
		method TEXT NOT NULL DEFAULT 'rules',
		active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_kanban_tasks_status ON kanban_tasks(status)`,

	`CREATE TABLE IF NOT EXISTS habits (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS habit_logs (
		id TEXT PRIMARY KEY,
		habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		day TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(habit_id, day)
	)`,
}
