package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uiiaa/signoise/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db *sql.DB
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(db *sql.DB) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: db}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (id, title, type, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.Title, string(g.Type), g.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `SELECT id, title, type, created_at FROM goals WHERE id = ?`
	return scanGoal(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteGoalRepo) List(ctx context.Context) ([]*domain.Goal, error) {
	query := `SELECT id, title, type, created_at FROM goals ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func scanGoal(row scanner) (*domain.Goal, error) {
	var g domain.Goal
	var goalType, createdAtStr string

	err := row.Scan(&g.ID, &g.Title, &goalType, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	g.Type = domain.GoalType(goalType)
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing goal created_at: %w", err)
	}
	g.CreatedAt = createdAt

	return &g, nil
}
