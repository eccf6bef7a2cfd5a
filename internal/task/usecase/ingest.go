package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/extract"
	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
)

// Ingest extracts tasks from a natural-language utterance and persists
// every draft. Drafts are written concurrently; the output preserves the
// order they appeared in the utterance, and one failed write never aborts
// the rest of the batch.
func (uc *implUseCase) Ingest(ctx context.Context, sc model.Scope, input task.IngestInput) (task.IngestOutput, error) {
	utterance := strings.TrimSpace(input.Utterance)
	if utterance == "" {
		return task.IngestOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Ingest: owner=%s input_length=%d", sc.OwnerID, len(utterance))

	res, err := uc.extractor.Extract(ctx, utterance, extract.Reference{
		Now:      time.Now().UTC(),
		Location: uc.location,
	})
	if err != nil {
		if extract.IsUnrecognized(err) {
			return task.IngestOutput{}, task.ErrNothingParsed
		}
		uc.l.Errorf(ctx, "Ingest: extraction failed: %v", err)
		return task.IngestOutput{}, task.ErrExtractorDown
	}

	drafts := res.All()
	created := make([]*model.Task, len(drafts))
	errs := make([]error, len(drafts))

	var wg sync.WaitGroup
	for i, d := range drafts {
		wg.Add(1)
		go func(i int, d extract.Draft) {
			defer wg.Done()

			st := model.StatusTodo
			if d.Status != nil {
				st = *d.Status
			}
			t, err := uc.createWithFallback(ctx, sc, repository.CreateOptions{
				ID:          uuid.NewString(),
				Title:       d.Title,
				Description: d.Description,
				DueAt:       d.DueAt,
				Status:      st,
			})
			if err != nil {
				errs[i] = err
				return
			}
			created[i] = &t
		}(i, d)
	}
	wg.Wait()

	out := task.IngestOutput{}
	b := uc.boards.Board(sc.OwnerID)
	for i := range drafts {
		if errs[i] != nil {
			uc.l.Errorf(ctx, "Ingest: draft %d %q failed: %v", i, drafts[i].Title, errs[i])
			out.Failed = append(out.Failed, task.FailedDraft{
				Index:  i,
				Title:  drafts[i].Title,
				Reason: errs[i].Error(),
			})
			continue
		}
		b.Load(created[i].ID, created[i].Status)
		out.Created = append(out.Created, *created[i])
	}

	uc.l.Infof(ctx, "Ingest: owner=%s created=%d failed=%d", sc.OwnerID, len(out.Created), len(out.Failed))
	return out, nil
}
