package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
)

// Create persists a single task for the scoped owner.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return model.Task{}, task.ErrTitleRequired
	}
	input.Description = normalizeDescription(input.Description)

	st := model.StatusTodo
	if input.Status != nil {
		if !input.Status.Valid() {
			return model.Task{}, task.ErrInvalidStatus
		}
		st = *input.Status
	}

	created, err := uc.createWithFallback(ctx, sc, repository.CreateOptions{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		Status:      st,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Create: %v", err)
		return model.Task{}, err
	}

	uc.boards.Board(sc.OwnerID).Load(created.ID, created.Status)
	uc.l.Infof(ctx, "Create: owner=%s task=%s status=%s", sc.OwnerID, created.ID, created.Status)
	return created, nil
}

// createWithFallback retries the insert without the status column when the
// table predates it.
func (uc *implUseCase) createWithFallback(ctx context.Context, sc model.Scope, opt repository.CreateOptions) (model.Task, error) {
	created, err := uc.repo.Create(ctx, sc, opt)
	if errors.Is(err, repository.ErrSchemaMismatch) {
		uc.l.Warnf(ctx, "no status column, falling back to legacy insert for %q", opt.Title)
		opt.LegacyOnly = true
		created, err = uc.repo.Create(ctx, sc, opt)
	}
	return created, err
}

// Get returns one task by ID, scoped to the owner.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	got, err := uc.repo.Get(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		return model.Task{}, err
	}
	return uc.overlay(sc, []model.Task{got})[0], nil
}

// List returns the owner's tasks ordered by creation time.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]model.Task, error) {
	tasks, err := uc.repo.List(ctx, sc, repository.ListOptions{Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "List: %v", err)
		return nil, err
	}
	return uc.overlay(sc, tasks), nil
}

// Update applies a partial update to one task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		if trimmed == "" {
			return model.Task{}, task.ErrTitleRequired
		}
		input.Title = &trimmed
	}
	if input.Status != nil && !input.Status.Valid() {
		return model.Task{}, task.ErrInvalidStatus
	}
	if input.Description != nil {
		// An explicit blank clears the stored description to absent.
		trimmed := strings.TrimSpace(*input.Description)
		input.Description = &trimmed
	}

	opt := repository.UpdateOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		Status:      input.Status,
	}

	updated, err := uc.repo.Update(ctx, sc, opt)
	if errors.Is(err, repository.ErrSchemaMismatch) {
		uc.l.Warnf(ctx, "no status column, falling back to legacy update for task %s", input.ID)
		opt.LegacyOnly = true
		updated, err = uc.repo.Update(ctx, sc, opt)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "Update: %v", err)
		return model.Task{}, err
	}

	if input.Status != nil {
		uc.boards.Board(sc.OwnerID).Load(updated.ID, updated.Status)
	}
	return updated, nil
}

// Delete removes one task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "Delete: %v", err)
		return err
	}
	uc.boards.Board(sc.OwnerID).Forget(id)
	return nil
}
