package task

import (
	"time"

	"taskboard/internal/model"
)

// CreateInput is the input for direct task creation.
type CreateInput struct {
	Title       string
	Description *string
	DueAt       *time.Time
	Status      *model.Status // defaults to todo when nil
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	DueAt       *time.Time
	Status      *model.Status
}

// ListInput filters the owner's task list.
type ListInput struct {
	Status *model.Status
}

// IngestInput carries the raw natural-language utterance.
type IngestInput struct {
	Utterance string
}

// FailedDraft reports one draft that could not be persisted.
type FailedDraft struct {
	Index  int    // position in the extracted sequence
	Title  string
	Reason string
}

// IngestOutput is the result of utterance ingestion. Created preserves the
// order drafts appeared in the utterance.
type IngestOutput struct {
	Created []model.Task
	Failed  []FailedDraft
}

// MoveInput transitions a task to a target column.
type MoveInput struct {
	TaskID string
	Status model.Status
}

// BoardOutput groups the owner's tasks into the three columns.
type BoardOutput struct {
	Todo       []model.Task
	InProgress []model.Task
	Completed  []model.Task
}

// StatsOutput holds per-column counts plus due-date summaries.
// Completed tasks are never counted as overdue. DueToday and Overdue
// overlap: a task due earlier today appears in both.
type StatsOutput struct {
	Total      int
	Todo       int
	InProgress int
	Completed  int
	DueToday   int
	Overdue    int
}

// SuggestInput is a keystroke-level suggestion query.
type SuggestInput struct {
	Query string
}

// SuggestOutput carries suggestion titles; Stale marks results that were
// superseded by a newer query before the debounce window elapsed.
type SuggestOutput struct {
	Query       string
	Suggestions []string
	Stale       bool
}
