package usecase

import (
	"context"
	"errors"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/task/repository"
)

// normalizeDescription trims whitespace; an absent or blank description
// is nil, never an empty string.
func normalizeDescription(d *string) *string {
	if d == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*d)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// persistStatus commits a column transition. Tables without the status
// column get a second write that touches only the completed flag.
func (uc *implUseCase) persistStatus(ctx context.Context, ownerID, taskID string, st model.Status) error {
	sc := model.Scope{OwnerID: ownerID}

	_, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{ID: taskID, Status: &st})
	if errors.Is(err, repository.ErrSchemaMismatch) {
		uc.l.Warnf(ctx, "no status column, falling back to legacy write for task %s", taskID)
		_, err = uc.repo.Update(ctx, sc, repository.UpdateOptions{
			ID:         taskID,
			Status:     &st,
			LegacyOnly: true,
		})
	}
	return err
}

// fetchSuggestions backs the suggester with a title substring lookup.
func (uc *implUseCase) fetchSuggestions(ctx context.Context, ownerID, query string, limit int) ([]string, error) {
	tasks, err := uc.repo.List(ctx, model.Scope{OwnerID: ownerID}, repository.ListOptions{
		TitleQuery: query,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(tasks))
	for _, t := range tasks {
		titles = append(titles, t.Title)
	}
	return titles, nil
}

// overlay replaces confirmed statuses with the board's optimistic view so
// a client polling mid-transition sees the column it dropped the card in.
func (uc *implUseCase) overlay(sc model.Scope, tasks []model.Task) []model.Task {
	b := uc.boards.Board(sc.OwnerID)
	for i := range tasks {
		if st, ok := b.View(tasks[i].ID); ok {
			tasks[i].Status = st
			tasks[i].NormalizeLegacy()
		}
	}
	return tasks
}
