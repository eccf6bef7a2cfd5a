package task

import (
	"context"

	"taskboard/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create persists a single task for the scoped owner.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// Get returns one task by ID, scoped to the owner.
	Get(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// List returns the owner's tasks ordered by creation time.
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Task, error)

	// Update applies a partial update to one task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// Delete removes one task.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Ingest extracts tasks from a natural-language utterance and persists
	// every draft, reporting per-draft failures without aborting the batch.
	Ingest(ctx context.Context, sc model.Scope, input IngestInput) (IngestOutput, error)

	// Move transitions a task between board columns.
	Move(ctx context.Context, sc model.Scope, input MoveInput) (model.Task, error)

	// Board returns the owner's tasks grouped into the three columns.
	Board(ctx context.Context, sc model.Scope) (BoardOutput, error)

	// Stats returns per-column task counts for the owner.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)

	// Suggest returns debounced search suggestions over the owner's task
	// titles. Results for stale queries are dropped.
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)
}
