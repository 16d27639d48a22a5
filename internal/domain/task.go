package domain

import "fmt"

// Task is the unit of work tracked for a cohort.
type Task struct {
	ID         string `json:"id"`
	Cohort     string `json:"cohort"`
	Title      string `json:"title"`
	DueDate    string `json:"dueDate"` // YYYY-MM-DD
	Phase      Phase  `json:"phase"`
	Assignee   string `json:"assignee"`
	Done       bool   `json:"done"`
	CreatedAt  int64  `json:"createdAt"` // unix milliseconds
	TemplateID string `json:"templateId,omitempty"`
	Origin     Origin `json:"origin,omitempty"`
}

// SeedTaskID builds the deterministic ID for a template-spawned task.
// The (cohort, templateKey, dueDate) triple maps to exactly one ID, which
// is how re-materialization avoids duplicates.
func SeedTaskID(cohort, templateKey, dueDate string) string {
	return fmt.Sprintf("%s:%s:%s", cohort, templateKey, dueDate)
}

// CustomTemplate is a user-promoted task template. The due date for a
// target cohort is derived from OffsetDays relative to that cohort's
// program start; BaseCohort records which cohort the offset was taken from.
type CustomTemplate struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Phase      Phase  `json:"phase"`
	Assignee   string `json:"assignee,omitempty"`
	BaseCohort string `json:"baseCohort"`
	OffsetDays int    `json:"offsetDays"`
}

// TaskPatch holds optional field updates for a task. Nil fields are left
// untouched.
type TaskPatch struct {
	Title    *string
	DueDate  *string
	Phase    *Phase
	Assignee *string
}

// Apply returns a copy of t with the non-nil patch fields applied.
// An empty title in the patch is ignored rather than erased.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil && *p.Title != "" {
		t.Title = *p.Title
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Phase != nil {
		t.Phase = *p.Phase
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	return t
}
