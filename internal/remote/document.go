package remote

import (
	"encoding/json"
	"fmt"

	"github.com/jaeyoonkim/gisu/internal/domain"
)

// TaskList is the value stored under the "tasks" key. UpdatedAt here, not
// the document-level timestamp, drives sync freshness comparison.
type TaskList struct {
	Tasks     []domain.Task `json:"tasks"`
	UpdatedAt int64         `json:"updatedAt"`
}

// DecodeTaskList reads a "tasks" document value. Early deployments stored
// a bare task array; those decode as a payload with UpdatedAt 0 so any
// timestamped copy wins against them.
func DecodeTaskList(raw json.RawMessage) (TaskList, error) {
	var payload TaskList
	if err := json.Unmarshal(raw, &payload); err == nil {
		return payload, nil
	}

	var legacy []domain.Task
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return TaskList{}, fmt.Errorf("decoding tasks payload: %w", err)
	}
	return TaskList{Tasks: legacy, UpdatedAt: 0}, nil
}

// DecodeCohort reads a "cohort" document value.
func DecodeCohort(raw json.RawMessage) (string, error) {
	var cohort string
	if err := json.Unmarshal(raw, &cohort); err != nil {
		return "", fmt.Errorf("decoding cohort payload: %w", err)
	}
	return cohort, nil
}
