package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jaeyoonkim/gisu/internal/bridge"
	"github.com/jaeyoonkim/gisu/internal/catalog"
	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/jaeyoonkim/gisu/internal/materialize"
	"github.com/jaeyoonkim/gisu/internal/repository"
)

type cohortService struct {
	settings   repository.SettingsRepo
	cache      repository.TaskCacheRepo
	templates  repository.CustomTemplateRepo
	dismissals repository.DismissalRepo
	seeds      repository.SeedMarkRepo
	bridge     *bridge.Bridge
	now        func() int64
	newID      func() string
}

func NewCohortService(settings repository.SettingsRepo, cache repository.TaskCacheRepo, templates repository.CustomTemplateRepo, dismissals repository.DismissalRepo, seeds repository.SeedMarkRepo, b *bridge.Bridge) CohortService {
	return &cohortService{
		settings:   settings,
		cache:      cache,
		templates:  templates,
		dismissals: dismissals,
		seeds:      seeds,
		bridge:     b,
		now:        domain.NowMillis,
		newID:      func() string { return uuid.New().String() },
	}
}

func (s *cohortService) Current(ctx context.Context) (string, error) {
	return s.settings.Get(ctx, repository.SettingCohort)
}

// Load resolves the cohort through the bridge so a selection made on
// another device wins over the stale local one.
func (s *cohortService) Load(ctx context.Context, uid string) (string, error) {
	return s.bridge.LoadCohort(ctx, uid)
}

// Select persists the cohort choice to both tiers and runs the
// materialization pass for it.
func (s *cohortService) Select(ctx context.Context, uid, cohort string) error {
	if _, ok := catalog.ScheduleFor(cohort); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCohort, cohort)
	}
	if err := s.bridge.SaveCohort(ctx, uid, cohort); err != nil {
		return err
	}
	_, err := s.Materialize(ctx, uid, cohort)
	return err
}

// Materialize brings the cohort's task list up to date: the built-in
// checklist is seeded once per cohort, custom templates are expanded on
// every pass so templates promoted after the first selection still land.
// Returns the number of tasks added.
func (s *cohortService) Materialize(ctx context.Context, uid, cohort string) (int, error) {
	tasks, err := s.cache.List(ctx)
	if err != nil {
		return 0, err
	}
	before := len(tasks)

	seeded, err := s.seeds.IsSeeded(ctx, cohort)
	if err != nil {
		return 0, err
	}
	if !seeded {
		tasks = materialize.EnsureSeedTasks(tasks, cohort, s.now())
	}

	templates, err := s.templates.List(ctx)
	if err != nil {
		return 0, err
	}
	drafts := materialize.CustomDrafts(tasks, templates, cohort, func(c, templateID string) bool {
		dismissed, err := s.dismissals.IsDismissed(ctx, c, templateID)
		return err == nil && dismissed
	})
	for i := range drafts {
		drafts[i].ID = "custom:" + s.newID()
		drafts[i].CreatedAt = s.now()
	}
	tasks = append(tasks, drafts...)

	added := len(tasks) - before
	if added > 0 {
		if _, err := s.bridge.SaveTasks(ctx, uid, tasks); err != nil {
			return 0, err
		}
	}
	if !seeded {
		if err := s.seeds.MarkSeeded(ctx, cohort); err != nil {
			return added, err
		}
	}
	return added, nil
}
