package model

import (
	"strings"
	"time"
)

// Status is the authoritative lifecycle value of a task. It maps one-to-one
// onto the three board columns.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus normalizes a wire-format status string. Legacy board clients
// send "inProgress"; older exports used "in-progress". Returns false for
// anything outside the three columns.
func ParseStatus(s string) (Status, bool) {
	switch strings.TrimSpace(s) {
	case "todo":
		return StatusTodo, true
	case "in_progress", "inProgress", "in-progress", "in progress":
		return StatusInProgress, true
	case "completed":
		return StatusCompleted, true
	}
	return "", false
}

// Valid reports whether s is one of the three columns.
func (s Status) Valid() bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusCompleted
}

// Completed reports whether s projects onto the legacy completion flag.
func (s Status) Completed() bool {
	return s == StatusCompleted
}

// DeriveStatus reconstructs a status from the legacy completion flag alone.
// The boolean cannot encode in_progress, so derivation only ever yields
// todo or completed.
func DeriveStatus(legacyCompleted bool) Status {
	if legacyCompleted {
		return StatusCompleted
	}
	return StatusTodo
}

// Task is a persisted, owner-scoped task record.
type Task struct {
	ID              string
	OwnerID         string
	Title           string
	Description     *string    // nil when absent, never an empty string
	DueAt           *time.Time // absolute UTC instant, nil when no due date
	Status          Status
	LegacyCompleted bool // redundant projection of Status, kept for old schemas
	CreatedAt       time.Time
}

// NormalizeLegacy recomputes the legacy flag from the status value. The flag
// is a serialization concern, never independently mutable state.
func (t *Task) NormalizeLegacy() {
	t.LegacyCompleted = t.Status.Completed()
}
