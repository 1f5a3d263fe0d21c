package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uiiaa/signoise/internal/domain"
)

// SQLiteHabitRepo implements HabitRepo using a SQLite database.
type SQLiteHabitRepo struct {
	db *sql.DB
}

// NewSQLiteHabitRepo creates a new SQLiteHabitRepo.
func NewSQLiteHabitRepo(db *sql.DB) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: db}
}

const dayFormat = "2006-01-02"

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	query := `INSERT INTO habits (id, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, h.ID, h.Name, h.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	query := `SELECT id, name, created_at FROM habits WHERE id = ?`
	return scanHabit(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteHabitRepo) List(ctx context.Context) ([]*domain.Habit, error) {
	query := `SELECT id, name, created_at FROM habits ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// LogCompletion records a completion; logging the same day twice is a
// no-op thanks to the UNIQUE(habit_id, day) constraint.
func (r *SQLiteHabitRepo) LogCompletion(ctx context.Context, log *domain.HabitLog) error {
	query := `INSERT OR IGNORE INTO habit_logs (id, habit_id, day, created_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		log.ID, log.HabitID,
		log.Day.UTC().Format(dayFormat),
		log.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("logging habit completion: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) CompletionDays(ctx context.Context, habitID string, since time.Time) ([]time.Time, error) {
	query := `SELECT day FROM habit_logs WHERE habit_id = ? AND day >= ? ORDER BY day`
	rows, err := r.db.QueryContext(ctx, query, habitID, since.UTC().Format(dayFormat))
	if err != nil {
		return nil, fmt.Errorf("listing habit completions: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var dayStr string
		if err := rows.Scan(&dayStr); err != nil {
			return nil, fmt.Errorf("scanning habit day: %w", err)
		}
		day, err := time.ParseInLocation(dayFormat, dayStr, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parsing habit day: %w", err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func scanHabit(row scanner) (*domain.Habit, error) {
	var h domain.Habit
	var createdAtStr string

	err := row.Scan(&h.ID, &h.Name, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing habit created_at: %w", err)
	}
	h.CreatedAt = createdAt

	return &h, nil
}
