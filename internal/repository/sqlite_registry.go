package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteDismissalRepo implements DismissalRepo using a SQLite database.
type SQLiteDismissalRepo struct {
	db *sql.DB
}

// NewSQLiteDismissalRepo creates a new SQLiteDismissalRepo.
func NewSQLiteDismissalRepo(db *sql.DB) *SQLiteDismissalRepo {
	return &SQLiteDismissalRepo{db: db}
}

func (r *SQLiteDismissalRepo) Dismiss(ctx context.Context, cohort, templateID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dismissals (cohort, template_id) VALUES (?, ?)
		 ON CONFLICT(cohort, template_id) DO NOTHING`,
		cohort, templateID,
	)
	if err != nil {
		return fmt.Errorf("recording dismissal (%s, %s): %w", cohort, templateID, err)
	}
	return nil
}

func (r *SQLiteDismissalRepo) IsDismissed(ctx context.Context, cohort, templateID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM dismissals WHERE cohort = ? AND template_id = ?`,
		cohort, templateID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking dismissal (%s, %s): %w", cohort, templateID, err)
	}
	return true, nil
}

// DeleteByTemplate removes every cohort's dismissal of the template. Used
// only when the template itself is deleted globally.
func (r *SQLiteDismissalRepo) DeleteByTemplate(ctx context.Context, templateID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM dismissals WHERE template_id = ?`, templateID)
	if err != nil {
		return fmt.Errorf("deleting dismissals for template %s: %w", templateID, err)
	}
	return nil
}

// SQLiteSeedMarkRepo implements SeedMarkRepo using a SQLite database.
type SQLiteSeedMarkRepo struct {
	db *sql.DB
}

// NewSQLiteSeedMarkRepo creates a new SQLiteSeedMarkRepo.
func NewSQLiteSeedMarkRepo(db *sql.DB) *SQLiteSeedMarkRepo {
	return &SQLiteSeedMarkRepo{db: db}
}

func (r *SQLiteSeedMarkRepo) IsSeeded(ctx context.Context, cohort string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM seeded_cohorts WHERE cohort = ?`, cohort,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking seed mark for %s: %w", cohort, err)
	}
	return true, nil
}

func (r *SQLiteSeedMarkRepo) MarkSeeded(ctx context.Context, cohort string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO seeded_cohorts (cohort) VALUES (?)
		 ON CONFLICT(cohort) DO NOTHING`,
		cohort,
	)
	if err != nil {
		return fmt.Errorf("marking cohort %s seeded: %w", cohort, err)
	}
	return nil
}
