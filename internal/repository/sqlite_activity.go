package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uiiaa/signoise/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db *sql.DB
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(db *sql.DB) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

const activityColumns = `id, description, duration_minutes, energy_before, energy_after,
	goal_id, impact, effort, score, classification, confidence, reasoning, method, created_at`

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var goalID any
	if a.GoalID != "" {
		goalID = a.GoalID
	}
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Description,
		a.DurationMinutes,
		a.EnergyBefore,
		a.EnergyAfter,
		goalID,
		a.Impact,
		a.Effort,
		a.Result.Score,
		string(a.Result.Classification),
		a.Result.Confidence,
		a.Result.Reasoning,
		string(a.Result.Method),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanActivity(row)
}

func (r *SQLiteActivityRepo) ListRecent(ctx context.Context, days int) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE created_at >= datetime('now', ? || ' days')
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *SQLiteActivityRepo) UpdateResult(ctx context.Context, id string, result domain.ClassificationResult) error {
	query := `UPDATE activities
		SET score = ?, classification = ?, confidence = ?, reasoning = ?, method = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		result.Score,
		string(result.Classification),
		result.Confidence,
		result.Reasoning,
		string(result.Method),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating activity result: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("activity %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(row scanner) (*domain.Activity, error) {
	var a domain.Activity
	var goalID sql.NullString
	var classification, method, createdAtStr string

	err := row.Scan(
		&a.ID, &a.Description, &a.DurationMinutes, &a.EnergyBefore, &a.EnergyAfter,
		&goalID, &a.Impact, &a.Effort,
		&a.Result.Score, &classification, &a.Result.Confidence, &a.Result.Reasoning, &method,
		&createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.GoalID = goalID.String
	a.Result.Classification = domain.Classification(classification)
	a.Result.Method = domain.Method(method)

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing activity created_at: %w", err)
	}
	a.CreatedAt = createdAt

	return &a, nil
}
