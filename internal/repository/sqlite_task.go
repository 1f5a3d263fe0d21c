package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uiiaa/signoise/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

const taskColumns = `id, title, description, project, status, priority,
	generates_revenue, urgent, important, impact, effort,
	score, classification, confidence, reasoning, method,
	active, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.KanbanTask) error {
	query := `INSERT INTO kanban_tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Title, t.Description, t.Project, string(t.Status), string(t.Priority),
		t.GeneratesRevenue, t.Urgent, t.Important, t.Impact, t.Effort,
		t.Result.Score, string(t.Result.Classification), t.Result.Confidence,
		t.Result.Reasoning, string(t.Result.Method),
		t.Active,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.KanbanTask, error) {
	query := `SELECT ` + taskColumns + ` FROM kanban_tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanTask(row)
}

func (r *SQLiteTaskRepo) List(ctx context.Context, status domain.TaskStatus) ([]*domain.KanbanTask, error) {
	query := `SELECT ` + taskColumns + ` FROM kanban_tasks WHERE active = 1`
	args := []any{}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY score DESC, created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.KanbanTask
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.KanbanTask) error {
	query := `UPDATE kanban_tasks SET
		title = ?, description = ?, project = ?, status = ?, priority = ?,
		generates_revenue = ?, urgent = ?, important = ?, impact = ?, effort = ?,
		score = ?, classification = ?, confidence = ?, reasoning = ?, method = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title, t.Description, t.Project, string(t.Status), string(t.Priority),
		t.GeneratesRevenue, t.Urgent, t.Important, t.Impact, t.Effort,
		t.Result.Score, string(t.Result.Classification), t.Result.Confidence,
		t.Result.Reasoning, string(t.Result.Method),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking task update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE kanban_tasks SET active = 0, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("soft-deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking task delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanTask(row scanner) (*domain.KanbanTask, error) {
	var t domain.KanbanTask
	var status, priority, classification, method, createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Project, &status, &priority,
		&t.GeneratesRevenue, &t.Urgent, &t.Important, &t.Impact, &t.Effort,
		&t.Result.Score, &classification, &t.Result.Confidence, &t.Result.Reasoning, &method,
		&t.Active, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Status = domain.TaskStatus(status)
	t.Priority = domain.Priority(priority)
	t.Result.Classification = domain.Classification(classification)
	t.Result.Method = domain.Method(method)

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing task created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing task updated_at: %w", err)
	}
	t.CreatedAt, t.UpdatedAt = createdAt, updatedAt

	return &t, nil
}
