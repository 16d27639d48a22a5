// Package materialize expands task templates into concrete dated tasks
// for a cohort. All functions are pure: callers persist the results.
package materialize

import (
	"github.com/jaeyoonkim/gisu/internal/catalog"
	"github.com/jaeyoonkim/gisu/internal/domain"
)

// PhaseOf buckets a due date against a cohort's program window.
// The during bucket is inclusive on both boundaries.
func PhaseOf(dueDate, start, end string) domain.Phase {
	if dueDate < start {
		return domain.PhasePre
	}
	if dueDate > end {
		return domain.PhasePost
	}
	return domain.PhaseDuring
}

// PhaseFor derives the phase of a due date for a cohort. Unknown cohorts
// default to during, matching how ad-hoc tasks without a schedule behave.
func PhaseFor(cohort, dueDate string) domain.Phase {
	sched, ok := catalog.ScheduleFor(cohort)
	if !ok {
		return domain.PhaseDuring
	}
	return PhaseOf(dueDate, sched.Start(), sched.End())
}

// EnsureSeedTasks returns tasks plus any seed-template tasks missing for
// the cohort. A cohort without a registered schedule is a no-op, not an
// error. Idempotent: deterministic IDs already present are skipped.
func EnsureSeedTasks(tasks []domain.Task, cohort string, now int64) []domain.Task {
	sched, ok := catalog.ScheduleFor(cohort)
	if !ok {
		return tasks
	}

	existing := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.Cohort == cohort {
			existing[t.ID] = true
		}
	}

	out := tasks
	for _, tpl := range catalog.SeedTemplates {
		due, err := domain.AddDays(sched[tpl.Anchor], tpl.OffsetDays)
		if err != nil {
			continue
		}
		id := domain.SeedTaskID(cohort, tpl.Key, due)
		if existing[id] {
			continue
		}
		out = append(out, domain.Task{
			ID:        id,
			Cohort:    cohort,
			Title:     tpl.Title,
			DueDate:   due,
			Phase:     PhaseOf(due, sched.Start(), sched.End()),
			Assignee:  tpl.DefaultAssignee,
			Done:      false,
			CreatedAt: now,
			Origin:    domain.OriginSeed,
		})
	}
	return out
}
