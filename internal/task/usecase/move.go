package usecase

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
)

// Move transitions a task between board columns. Transitions for the same
// task are serialized by the board; a storage failure rolls the board back
// and surfaces here.
func (uc *implUseCase) Move(ctx context.Context, sc model.Scope, input task.MoveInput) (model.Task, error) {
	if !input.Status.Valid() {
		return model.Task{}, task.ErrInvalidStatus
	}

	current, err := uc.repo.Get(ctx, sc, input.TaskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		return model.Task{}, err
	}

	b := uc.boards.Board(sc.OwnerID)
	if _, tracked := b.View(input.TaskID); !tracked {
		b.Load(input.TaskID, current.Status)
	}

	if err := b.Move(ctx, input.TaskID, input.Status); err != nil {
		return model.Task{}, fmt.Errorf("move rolled back: %w", err)
	}

	current.Status = input.Status
	current.NormalizeLegacy()
	return current, nil
}

// Board returns the owner's tasks grouped into the three columns.
func (uc *implUseCase) Board(ctx context.Context, sc model.Scope) (task.BoardOutput, error) {
	tasks, err := uc.List(ctx, sc, task.ListInput{})
	if err != nil {
		return task.BoardOutput{}, err
	}

	out := task.BoardOutput{
		Todo:       []model.Task{},
		InProgress: []model.Task{},
		Completed:  []model.Task{},
	}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusInProgress:
			out.InProgress = append(out.InProgress, t)
		case model.StatusCompleted:
			out.Completed = append(out.Completed, t)
		default:
			out.Todo = append(out.Todo, t)
		}
	}
	return out, nil
}
