package usecase

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/task"
)

// Suggest returns debounced search suggestions over the owner's task
// titles. A query superseded by a newer one comes back marked stale with
// no suggestions.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, input task.SuggestInput) (task.SuggestOutput, error) {
	res, err := uc.suggester.Suggest(ctx, sc.OwnerID, input.Query)
	if err != nil {
		uc.l.Errorf(ctx, "Suggest: %v", err)
		return task.SuggestOutput{}, err
	}

	return task.SuggestOutput{
		Query:       res.Query,
		Suggestions: res.Suggestions,
		Stale:       res.Stale,
	}, nil
}
