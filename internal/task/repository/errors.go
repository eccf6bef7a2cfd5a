package repository

import "errors"

var (
	// ErrNotFound indicates the task does not exist for this owner.
	ErrNotFound = errors.New("task not found")

	// ErrSchemaMismatch indicates the backing table predates the status
	// column. Callers retry the write with LegacyOnly set.
	ErrSchemaMismatch = errors.New("task table has no status column")
)
