package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jaeyoonkim/gisu/internal/bridge"
	"github.com/jaeyoonkim/gisu/internal/catalog"
	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/jaeyoonkim/gisu/internal/materialize"
	"github.com/jaeyoonkim/gisu/internal/repository"
)

type taskService struct {
	cache      repository.TaskCacheRepo
	templates  repository.CustomTemplateRepo
	dismissals repository.DismissalRepo
	bridge     *bridge.Bridge
	now        func() int64
	newID      func() string
}

func NewTaskService(cache repository.TaskCacheRepo, templates repository.CustomTemplateRepo, dismissals repository.DismissalRepo, b *bridge.Bridge) TaskService {
	return &taskService{
		cache:      cache,
		templates:  templates,
		dismissals: dismissals,
		bridge:     b,
		now:        domain.NowMillis,
		newID:      func() string { return uuid.New().String() },
	}
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.cache.List(ctx)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	tasks, err := s.cache.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, ErrTaskNotFound
}

func (s *taskService) Toggle(ctx context.Context, uid, id string) (*domain.Task, error) {
	var toggled *domain.Task
	err := s.mutate(ctx, uid, func(tasks []domain.Task) ([]domain.Task, error) {
		for i := range tasks {
			if tasks[i].ID == id {
				tasks[i].Done = !tasks[i].Done
				toggled = &tasks[i]
				return tasks, nil
			}
		}
		return nil, ErrTaskNotFound
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

func (s *taskService) SetAssignee(ctx context.Context, uid, id, assignee string) error {
	return s.mutate(ctx, uid, func(tasks []domain.Task) ([]domain.Task, error) {
		for i := range tasks {
			if tasks[i].ID == id {
				tasks[i].Assignee = assignee
				return tasks, nil
			}
		}
		return nil, ErrTaskNotFound
	})
}

// Add appends a task. An empty title is a silent no-op rather than an
// error: form submissions with nothing typed should change nothing.
func (s *taskService) Add(ctx context.Context, uid string, t domain.Task) (*domain.Task, error) {
	if t.Title == "" {
		return nil, nil
	}
	if t.ID == "" {
		t.ID = "custom:" + s.newID()
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = s.now()
	}
	if t.Origin == "" {
		t.Origin = domain.OriginCustom
	}
	if t.Phase == "" || !domain.ValidPhases[string(t.Phase)] {
		t.Phase = materialize.PhaseFor(t.Cohort, t.DueDate)
	}
	err := s.mutate(ctx, uid, func(tasks []domain.Task) ([]domain.Task, error) {
		return append(tasks, t), nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *taskService) Update(ctx context.Context, uid, id string, patch domain.TaskPatch) (*domain.Task, error) {
	var updated *domain.Task
	err := s.mutate(ctx, uid, func(tasks []domain.Task) ([]domain.Task, error) {
		for i := range tasks {
			if tasks[i].ID != id {
				continue
			}
			next := patch.Apply(tasks[i])
			if patch.DueDate != nil && patch.Phase == nil {
				next.Phase = materialize.PhaseFor(next.Cohort, next.DueDate)
			}
			tasks[i] = next
			updated = &tasks[i]
			return tasks, nil
		}
		return nil, ErrTaskNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a task. When dismiss is set and the task came from a
// custom template, the (cohort, template) pair is recorded so cohort
// re-selection does not materialize it again.
func (s *taskService) Delete(ctx context.Context, uid, id string, dismiss bool) error {
	var removed *domain.Task
	err := s.mutate(ctx, uid, func(tasks []domain.Task) ([]domain.Task, error) {
		for i := range tasks {
			if tasks[i].ID == id {
				t := tasks[i]
				removed = &t
				return append(tasks[:i], tasks[i+1:]...), nil
			}
		}
		return nil, ErrTaskNotFound
	})
	if err != nil {
		return err
	}
	if dismiss && removed.TemplateID != "" {
		if err := s.dismissals.Dismiss(ctx, removed.Cohort, removed.TemplateID); err != nil {
			return fmt.Errorf("recording dismissal: %w", err)
		}
	}
	return nil
}

func (s *taskService) BulkUpdateByTemplate(ctx context.Context, uid, templateID string, patch domain.TaskPatch) (int, error) {
	count := 0
	err := s.mutate(ctx, uid, func(tasks []domain.Task) ([]domain.Task, error) {
		for i := range tasks {
			if tasks[i].TemplateID != templateID {
				continue
			}
			next := patch.Apply(tasks[i])
			if patch.DueDate != nil && patch.Phase == nil {
				next.Phase = materialize.PhaseFor(next.Cohort, next.DueDate)
			}
			tasks[i] = next
			count++
		}
		return tasks, nil
	})
	if err != nil {
		return 0, err
	}

	// Keep the template definition in step so future materializations
	// produce the updated shape. Tasks may carry a templateID whose
	// definition was already removed; those still update fine above.
	tpl, err := s.templates.GetByID(ctx, templateID)
	if errors.Is(err, repository.ErrNotFound) {
		return count, nil
	}
	if err != nil {
		return count, fmt.Errorf("loading template: %w", err)
	}
	if patch.Title != nil && *patch.Title != "" {
		tpl.Title = *patch.Title
	}
	if patch.Assignee != nil {
		tpl.Assignee = *patch.Assignee
	}
	if patch.Phase != nil {
		tpl.Phase = *patch.Phase
	}
	if err := s.templates.Upsert(ctx, tpl); err != nil {
		return count, fmt.Errorf("updating template: %w", err)
	}
	return count, nil
}

// BulkDeleteByTemplate removes the template's tasks in every cohort,
// deletes the template definition, and dismisses the template for all
// known cohorts so nothing re-materializes it.
func (s *taskService) BulkDeleteByTemplate(ctx context.Context, uid, templateID string) (int, error) {
	count := 0
	err := s.mutate(ctx, uid, func(tasks []domain.Task) ([]domain.Task, error) {
		kept := tasks[:0]
		for _, t := range tasks {
			if t.TemplateID == templateID {
				count++
				continue
			}
			kept = append(kept, t)
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}

	if err := s.templates.Delete(ctx, templateID); err != nil {
		return count, fmt.Errorf("deleting template: %w", err)
	}
	for _, cohort := range catalog.Keys() {
		if err := s.dismissals.Dismiss(ctx, cohort, templateID); err != nil {
			return count, fmt.Errorf("recording dismissal: %w", err)
		}
	}
	return count, nil
}

// PromoteToTemplate turns an existing task into a reusable template. The
// offset is measured from the task's own cohort start, so applying the
// template to another cohort lands on the same relative day.
func (s *taskService) PromoteToTemplate(ctx context.Context, uid, id string) (*domain.CustomTemplate, error) {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sched, ok := catalog.ScheduleFor(task.Cohort)
	if !ok {
		return nil, ErrUnknownCohort
	}
	offset, err := domain.DiffDays(task.DueDate, sched.Start())
	if err != nil {
		return nil, fmt.Errorf("computing template offset: %w", err)
	}

	tpl := &domain.CustomTemplate{
		ID:         s.newID(),
		Title:      task.Title,
		Phase:      task.Phase,
		Assignee:   task.Assignee,
		BaseCohort: task.Cohort,
		OffsetDays: offset,
	}
	if err := s.templates.Upsert(ctx, tpl); err != nil {
		return nil, fmt.Errorf("saving template: %w", err)
	}

	// Link the source task so bulk operations on the template include it.
	err = s.mutate(ctx, uid, func(tasks []domain.Task) ([]domain.Task, error) {
		for i := range tasks {
			if tasks[i].ID == id {
				tasks[i].TemplateID = tpl.ID
				tasks[i].Origin = domain.OriginCustom
				break
			}
		}
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *taskService) ApplyTemplateToAllCohorts(ctx context.Context, uid, templateID string) (int, error) {
	tpl, err := s.templates.GetByID(ctx, templateID)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, ErrTemplateNotFound
	}
	if err != nil {
		return 0, err
	}

	count := 0
	err = s.mutate(ctx, uid, func(tasks []domain.Task) ([]domain.Task, error) {
		drafts := materialize.AllCohortDrafts(tasks, materialize.ApplySpec{
			TemplateID: tpl.ID,
			Title:      tpl.Title,
			Assignee:   tpl.Assignee,
			OffsetDays: tpl.OffsetDays,
		})
		for i := range drafts {
			drafts[i].ID = "custom:" + s.newID()
			drafts[i].CreatedAt = s.now()
		}
		count = len(drafts)
		return append(tasks, drafts...), nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *taskService) Templates(ctx context.Context) ([]domain.CustomTemplate, error) {
	return s.templates.List(ctx)
}

// mutate runs fn over the current list and saves the result through the
// bridge. A failed remote push is not an error here; the cache holds the
// new state and the next save or reload converges the remote copy.
func (s *taskService) mutate(ctx context.Context, uid string, fn func([]domain.Task) ([]domain.Task, error)) error {
	tasks, err := s.cache.List(ctx)
	if err != nil {
		return err
	}
	next, err := fn(tasks)
	if err != nil {
		return err
	}
	_, err = s.bridge.SaveTasks(ctx, uid, next)
	return err
}
