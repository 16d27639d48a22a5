package repository

import (
	"context"

	"github.com/jaeyoonkim/gisu/internal/domain"
)

// TaskCacheRepo mirrors the remote tasks document in the local cache.
// ReplaceAll swaps the whole mirror atomically together with its payload
// timestamp; an empty task list is a legitimate state and must persist.
type TaskCacheRepo interface {
	ReplaceAll(ctx context.Context, tasks []domain.Task, updatedAt int64) error
	List(ctx context.Context) ([]domain.Task, error)
	UpdatedAt(ctx context.Context) (int64, error)
}

// SettingsRepo stores small per-installation values such as the selected
// cohort and the signed-in user id.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Well-known settings keys.
const (
	SettingCohort         = "cohort"
	SettingUserID         = "user_id"
	SettingTasksUpdatedAt = "tasks_updated_at"
)

type CustomTemplateRepo interface {
	Upsert(ctx context.Context, tpl *domain.CustomTemplate) error
	GetByID(ctx context.Context, id string) (*domain.CustomTemplate, error)
	List(ctx context.Context) ([]domain.CustomTemplate, error)
	Delete(ctx context.Context, id string) error
}

// DismissalRepo records (cohort, template) pairs whose materialization is
// suppressed. Dismissing an already-dismissed pair is a no-op.
type DismissalRepo interface {
	Dismiss(ctx context.Context, cohort, templateID string) error
	IsDismissed(ctx context.Context, cohort, templateID string) (bool, error)
	DeleteByTemplate(ctx context.Context, templateID string) error
}

// SeedMarkRepo remembers which cohorts have had the built-in checklist
// materialized, so seeding happens at most once per cohort.
type SeedMarkRepo interface {
	IsSeeded(ctx context.Context, cohort string) (bool, error)
	MarkSeeded(ctx context.Context, cohort string) error
}

// HolidayCacheRepo caches the yearly holiday payload as raw JSON.
type HolidayCacheRepo interface {
	Get(ctx context.Context, year int) ([]byte, error)
	Put(ctx context.Context, year int, payload []byte) error
}
