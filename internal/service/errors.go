package service

import "errors"

var (
	// ErrTaskNotFound is returned when an operation names a task id
	// absent from the current list.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTemplateNotFound is returned when an operation names an unknown
	// custom template.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrUnknownCohort is returned when a cohort key has no registered
	// schedule.
	ErrUnknownCohort = errors.New("unknown cohort")
)
