package usecase

import (
	"context"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/task"
)

// Stats returns per-column task counts for the owner, plus how many
// open tasks are due today or already overdue.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	tasks, err := uc.List(ctx, sc, task.ListInput{})
	if err != nil {
		return task.StatsOutput{}, err
	}

	now := time.Now().UTC()
	out := task.StatsOutput{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusInProgress:
			out.InProgress++
		case model.StatusCompleted:
			out.Completed++
		default:
			out.Todo++
		}

		if t.DueAt == nil || t.Status == model.StatusCompleted {
			continue
		}
		due := t.DueAt.UTC()
		if due.Year() == now.Year() && due.YearDay() == now.YearDay() {
			out.DueToday++
		}
		if due.Before(now) {
			out.Overdue++
		}
	}
	return out, nil
}
