package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaeyoonkim/gisu/internal/domain"
)

const customTemplateColumns = `id, title, phase, assignee, base_cohort, offset_days`

// SQLiteCustomTemplateRepo implements CustomTemplateRepo using a SQLite database.
type SQLiteCustomTemplateRepo struct {
	db *sql.DB
}

// NewSQLiteCustomTemplateRepo creates a new SQLiteCustomTemplateRepo.
func NewSQLiteCustomTemplateRepo(db *sql.DB) *SQLiteCustomTemplateRepo {
	return &SQLiteCustomTemplateRepo{db: db}
}

func (r *SQLiteCustomTemplateRepo) Upsert(ctx context.Context, tpl *domain.CustomTemplate) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO custom_templates (`+customTemplateColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			phase = excluded.phase,
			assignee = excluded.assignee,
			base_cohort = excluded.base_cohort,
			offset_days = excluded.offset_days`,
		tpl.ID,
		tpl.Title,
		string(tpl.Phase),
		tpl.Assignee,
		tpl.BaseCohort,
		tpl.OffsetDays,
	)
	if err != nil {
		return fmt.Errorf("upserting custom template %s: %w", tpl.ID, err)
	}
	return nil
}

func (r *SQLiteCustomTemplateRepo) GetByID(ctx context.Context, id string) (*domain.CustomTemplate, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+customTemplateColumns+` FROM custom_templates WHERE id = ?`, id)

	var tpl domain.CustomTemplate
	var phase string
	err := row.Scan(&tpl.ID, &tpl.Title, &phase, &tpl.Assignee, &tpl.BaseCohort, &tpl.OffsetDays)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("custom template %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning custom template: %w", err)
	}
	tpl.Phase = domain.Phase(phase)
	return &tpl, nil
}

func (r *SQLiteCustomTemplateRepo) List(ctx context.Context) ([]domain.CustomTemplate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+customTemplateColumns+` FROM custom_templates ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("listing custom templates: %w", err)
	}
	defer rows.Close()

	var templates []domain.CustomTemplate
	for rows.Next() {
		var tpl domain.CustomTemplate
		var phase string
		if err := rows.Scan(&tpl.ID, &tpl.Title, &phase, &tpl.Assignee, &tpl.BaseCohort, &tpl.OffsetDays); err != nil {
			return nil, fmt.Errorf("scanning custom template: %w", err)
		}
		tpl.Phase = domain.Phase(phase)
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating custom templates: %w", err)
	}
	return templates, nil
}

func (r *SQLiteCustomTemplateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM custom_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting custom template %s: %w", id, err)
	}
	return nil
}
