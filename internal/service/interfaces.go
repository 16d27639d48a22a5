package service

import (
	"context"

	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/jaeyoonkim/gisu/internal/holiday"
)

// TaskService is the only mutation surface for the task list. Every
// operation transforms the full list and hands it to the persistence
// bridge, so the remote document and the cache never diverge in shape.
type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Toggle(ctx context.Context, uid, id string) (*domain.Task, error)
	SetAssignee(ctx context.Context, uid, id, assignee string) error
	Add(ctx context.Context, uid string, t domain.Task) (*domain.Task, error)
	Update(ctx context.Context, uid, id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, uid, id string, dismiss bool) error
	BulkUpdateByTemplate(ctx context.Context, uid, templateID string, patch domain.TaskPatch) (int, error)
	BulkDeleteByTemplate(ctx context.Context, uid, templateID string) (int, error)
	PromoteToTemplate(ctx context.Context, uid, id string) (*domain.CustomTemplate, error)
	ApplyTemplateToAllCohorts(ctx context.Context, uid, templateID string) (int, error)
	Templates(ctx context.Context) ([]domain.CustomTemplate, error)
}

// CohortService manages the selected cohort and the checklist
// materialization that follows a selection.
type CohortService interface {
	Current(ctx context.Context) (string, error)
	Load(ctx context.Context, uid string) (string, error)
	Select(ctx context.Context, uid, cohort string) error
	Materialize(ctx context.Context, uid, cohort string) (int, error)
}

// HolidayService resolves the public holidays of a year, preferring the
// local cache, then pre-generated files, then the live API.
type HolidayService interface {
	Year(ctx context.Context, year int) ([]holiday.Holiday, error)
}
