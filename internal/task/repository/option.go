package repository

import (
	"time"

	"taskboard/internal/model"
)

// CreateOptions holds the parameters for persisting a new task.
type CreateOptions struct {
	ID          string
	Title       string
	Description *string
	DueAt       *time.Time
	Status      model.Status

	// LegacyOnly skips the status column for schemas that predate it;
	// only legacy_completed is written.
	LegacyOnly bool
}

// UpdateOptions is a partial update; nil fields are left untouched.
// A pointer to an empty Description clears the stored value to NULL.
type UpdateOptions struct {
	ID          string
	Title       *string
	Description *string
	DueAt       *time.Time
	Status      *model.Status

	// LegacyOnly skips the status column, see CreateOptions.
	LegacyOnly bool
}

// ListOptions filters and pages a task listing.
type ListOptions struct {
	Status      *model.Status
	TitleQuery  string // case-insensitive substring match for suggestions
	Limit       int
	Offset      int
}
