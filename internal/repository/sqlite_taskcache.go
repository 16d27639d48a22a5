package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jaeyoonkim/gisu/internal/domain"
)

// taskCacheColumns is the canonical SELECT column list for task_cache.
const taskCacheColumns = `id, cohort, title, due_date, phase, assignee,
		done, created_at, template_id, origin`

// SQLiteTaskCacheRepo implements TaskCacheRepo using a SQLite database.
type SQLiteTaskCacheRepo struct {
	db *sql.DB
}

// NewSQLiteTaskCacheRepo creates a new SQLiteTaskCacheRepo.
func NewSQLiteTaskCacheRepo(db *sql.DB) *SQLiteTaskCacheRepo {
	return &SQLiteTaskCacheRepo{db: db}
}

// ReplaceAll swaps the cached mirror for the given task list and records
// the payload timestamp in the same transaction. An empty list clears the
// mirror; it is never treated as "nothing to save".
func (r *SQLiteTaskCacheRepo) ReplaceAll(ctx context.Context, tasks []domain.Task, updatedAt int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting cache transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM task_cache`); err != nil {
		return fmt.Errorf("clearing task cache: %w", err)
	}

	insert := `INSERT INTO task_cache (` + taskCacheColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, t := range tasks {
		_, err := tx.ExecContext(ctx, insert,
			t.ID,
			t.Cohort,
			t.Title,
			t.DueDate,
			string(t.Phase),
			t.Assignee,
			boolToInt(t.Done),
			t.CreatedAt,
			t.TemplateID,
			string(t.Origin),
		)
		if err != nil {
			return fmt.Errorf("inserting cached task %s: %w", t.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		SettingTasksUpdatedAt, strconv.FormatInt(updatedAt, 10),
	)
	if err != nil {
		return fmt.Errorf("recording cache timestamp: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cache replace: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteTaskCacheRepo) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskCacheColumns + ` FROM task_cache ORDER BY due_date, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cached tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var phase, origin string
		var done int
		if err := rows.Scan(
			&t.ID, &t.Cohort, &t.Title, &t.DueDate, &phase, &t.Assignee,
			&done, &t.CreatedAt, &t.TemplateID, &origin,
		); err != nil {
			return nil, fmt.Errorf("scanning cached task: %w", err)
		}
		t.Phase = domain.Phase(phase)
		t.Origin = domain.Origin(origin)
		t.Done = intToBool(done)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cached tasks: %w", err)
	}
	return tasks, nil
}

// UpdatedAt returns the timestamp stored with the last ReplaceAll, or 0
// when the cache has never been written.
func (r *SQLiteTaskCacheRepo) UpdatedAt(ctx context.Context) (int64, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, SettingTasksUpdatedAt,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading cache timestamp: %w", err)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Malformed cached value falls back to "never written".
		return 0, nil
	}
	return n, nil
}
