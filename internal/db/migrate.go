package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and the
// full list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Mirror of the remote tasks document, one row per task.
	`CREATE TABLE IF NOT EXISTS task_cache (
		id          TEXT PRIMARY KEY,
		cohort      TEXT NOT NULL,
		title       TEXT NOT NULL,
		due_date    TEXT NOT NULL,
		phase       TEXT NOT NULL
		            CHECK(phase IN ('pre','during','post')),
		assignee    TEXT NOT NULL DEFAULT '',
		done        INTEGER NOT NULL DEFAULT 0,
		created_at  INTEGER NOT NULL,
		template_id TEXT NOT NULL DEFAULT '',
		origin      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_cache_cohort ON task_cache(cohort)`,
	`CREATE INDEX IF NOT EXISTS idx_task_cache_template ON task_cache(template_id)`,

	// Small key-value settings: selected cohort, signed-in user id,
	// and the cached tasks payload timestamp.
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS custom_templates (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		phase       TEXT NOT NULL
		            CHECK(phase IN ('pre','during','post')),
		assignee    TEXT NOT NULL DEFAULT '',
		base_cohort TEXT NOT NULL,
		offset_days INTEGER NOT NULL
	)`,

	// Per (cohort, template) suppression of re-materialization.
	`CREATE TABLE IF NOT EXISTS dismissals (
		cohort      TEXT NOT NULL,
		template_id TEXT NOT NULL,
		PRIMARY KEY (cohort, template_id)
	)`,

	// Cohorts whose seed checklist has already been materialized once.
	`CREATE TABLE IF NOT EXISTS seeded_cohorts (
		cohort TEXT PRIMARY KEY
	)`,

	`CREATE TABLE IF NOT EXISTS holiday_cache (
		year       INTEGER PRIMARY KEY,
		payload    TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	)`,
}
