package repository

import "errors"

// ErrNotFound marks lookups for rows that do not exist. Callers match it
// with errors.Is after entity-specific wrapping.
var ErrNotFound = errors.New("not found")
