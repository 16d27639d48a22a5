package materialize

import (
	"github.com/jaeyoonkim/gisu/internal/catalog"
	"github.com/jaeyoonkim/gisu/internal/domain"
)

// Dismissed reports whether a (cohort, templateID) pair has been
// suppressed. Implemented by the dismissal registry.
type Dismissed func(cohort, templateID string) bool

// CustomDrafts expands user-authored templates into task drafts for the
// cohort, keyed off that cohort's program start. Dismissed templates and
// templates already represented among the cohort's tasks are skipped.
// Drafts carry no ID; the task store assigns one when it adopts them.
func CustomDrafts(tasks []domain.Task, templates []domain.CustomTemplate, cohort string, dismissed Dismissed) []domain.Task {
	sched, ok := catalog.ScheduleFor(cohort)
	if !ok {
		return nil
	}

	present := make(map[string]bool)
	for _, t := range tasks {
		if t.Cohort == cohort && t.TemplateID != "" {
			present[t.TemplateID] = true
		}
	}

	var drafts []domain.Task
	for _, tpl := range templates {
		if present[tpl.ID] {
			continue
		}
		if dismissed != nil && dismissed(cohort, tpl.ID) {
			continue
		}
		due, err := domain.AddDays(sched.Start(), tpl.OffsetDays)
		if err != nil {
			continue
		}
		drafts = append(drafts, domain.Task{
			Cohort:     cohort,
			Title:      tpl.Title,
			DueDate:    due,
			Phase:      tpl.Phase,
			Assignee:   tpl.Assignee,
			TemplateID: tpl.ID,
			Origin:     domain.OriginCustom,
		})
	}
	return drafts
}

// ApplySpec describes a template to be instantiated across every cohort.
type ApplySpec struct {
	TemplateID string
	Title      string
	Assignee   string
	OffsetDays int
}

// AllCohortDrafts produces one task draft per known cohort for the given
// template, skipping (cohort, templateID) pairs already present in tasks.
func AllCohortDrafts(tasks []domain.Task, spec ApplySpec) []domain.Task {
	present := make(map[string]bool)
	for _, t := range tasks {
		if t.TemplateID != "" {
			present[t.Cohort+"|"+t.TemplateID] = true
		}
	}

	var drafts []domain.Task
	for _, key := range catalog.Keys() {
		if present[key+"|"+spec.TemplateID] {
			continue
		}
		sched, ok := catalog.ScheduleFor(key)
		if !ok {
			continue
		}
		due, err := domain.AddDays(sched.Start(), spec.OffsetDays)
		if err != nil {
			continue
		}
		drafts = append(drafts, domain.Task{
			Cohort:     key,
			Title:      spec.Title,
			DueDate:    due,
			Phase:      PhaseOf(due, sched.Start(), sched.End()),
			Assignee:   spec.Assignee,
			TemplateID: spec.TemplateID,
			Origin:     domain.OriginCustom,
		})
	}
	return drafts
}
