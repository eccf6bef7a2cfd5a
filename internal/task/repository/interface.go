package repository

import (
	"context"

	"taskboard/internal/model"
)

// Repository is the interface for task persistence. Every operation is
// scoped to the owner in the Scope; a task belonging to another owner is
// indistinguishable from a missing one.
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opt CreateOptions) (model.Task, error)
	Get(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	List(ctx context.Context, sc model.Scope, opt ListOptions) ([]model.Task, error)
	Update(ctx context.Context, sc model.Scope, opt UpdateOptions) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
