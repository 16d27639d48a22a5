package testutil

import (
	"github.com/google/uuid"
	"github.com/jaeyoonkim/gisu/internal/domain"
)

// Task options
type TaskOption func(*domain.Task)

func WithDue(ymd string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = ymd
	}
}

func WithPhase(p domain.Phase) TaskOption {
	return func(t *domain.Task) {
		t.Phase = p
	}
}

func WithAssignee(who string) TaskOption {
	return func(t *domain.Task) {
		t.Assignee = who
	}
}

func WithDone() TaskOption {
	return func(t *domain.Task) {
		t.Done = true
	}
}

func WithTemplateID(id string) TaskOption {
	return func(t *domain.Task) {
		t.TemplateID = id
		t.Origin = domain.OriginCustom
	}
}

// NewTestTask builds an ad-hoc task for the given cohort with a random
// custom ID. Defaults: due mid-window of cohort 32, phase during.
func NewTestTask(cohort, title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:        "custom:" + uuid.New().String(),
		Cohort:    cohort,
		Title:     title,
		DueDate:   "2026-03-15",
		Phase:     domain.PhaseDuring,
		CreatedAt: 1_700_000_000_000,
		Origin:    domain.OriginCustom,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestTemplate builds a custom template based off cohort 32's start.
func NewTestTemplate(title string, offsetDays int) domain.CustomTemplate {
	return domain.CustomTemplate{
		ID:         uuid.New().String(),
		Title:      title,
		Phase:      domain.PhaseDuring,
		BaseCohort: "32",
		OffsetDays: offsetDays,
	}
}
