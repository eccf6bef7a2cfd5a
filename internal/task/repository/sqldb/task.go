package sqldb

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/task/repository"
)

// Create persists a new task. With LegacyOnly the status column is omitted
// so the insert succeeds against tables that predate it.
func (r *implRepository) Create(ctx context.Context, sc model.Scope, opt repository.CreateOptions) (model.Task, error) {
	st := opt.Status
	if st == "" {
		st = model.StatusTodo
	}

	rec := record{
		ID:              opt.ID,
		OwnerID:         sc.OwnerID,
		Title:           opt.Title,
		Description:     opt.Description,
		DueAt:           opt.DueAt,
		LegacyCompleted: st.Completed(),
		CreatedAt:       time.Now().UTC(),
	}

	cols := legacyColumns
	if !opt.LegacyOnly {
		s := string(st)
		rec.Status = &s
		cols = fullColumns
	}

	if err := r.db.WithContext(ctx).Select(cols).Create(&rec).Error; err != nil {
		r.l.Errorf(ctx, "sqldb.Create: %v", err)
		return model.Task{}, classifyError(err)
	}
	return rec.toModel(), nil
}

// Get returns one task by ID scoped to the owner. On tables without the
// status column it re-reads the legacy column set and derives status.
func (r *implRepository) Get(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	rec, err := r.fetch(ctx, sc, id, fullColumns)
	if errors.Is(err, repository.ErrSchemaMismatch) {
		rec, err = r.fetch(ctx, sc, id, legacyColumns)
	}
	if err != nil {
		return model.Task{}, err
	}
	return rec.toModel(), nil
}

func (r *implRepository) fetch(ctx context.Context, sc model.Scope, id string, cols []string) (record, error) {
	var rec record
	err := r.db.WithContext(ctx).
		Select(cols).
		Where("id = ? AND owner_id = ?", id, sc.OwnerID).
		Take(&rec).Error
	if err != nil {
		return record{}, classifyError(err)
	}
	return rec, nil
}

// List returns the owner's tasks ordered by creation time.
func (r *implRepository) List(ctx context.Context, sc model.Scope, opt repository.ListOptions) ([]model.Task, error) {
	recs, err := r.list(ctx, sc, opt, false)
	if errors.Is(err, repository.ErrSchemaMismatch) {
		recs, err = r.list(ctx, sc, opt, true)
	}
	if err != nil {
		r.l.Errorf(ctx, "sqldb.List: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, rec.toModel())
	}
	return tasks, nil
}

func (r *implRepository) list(ctx context.Context, sc model.Scope, opt repository.ListOptions, legacy bool) ([]record, error) {
	cols := fullColumns
	if legacy {
		cols = legacyColumns
	}

	q := r.db.WithContext(ctx).
		Select(cols).
		Where("owner_id = ?", sc.OwnerID)

	if opt.Status != nil {
		if legacy {
			// Without a status column only the completed flag exists, and a
			// derived status is never in_progress.
			switch *opt.Status {
			case model.StatusInProgress:
				return nil, nil
			default:
				q = q.Where("legacy_completed = ?", opt.Status.Completed())
			}
		} else {
			q = q.Where("status = ?", string(*opt.Status))
		}
	}

	if opt.TitleQuery != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(opt.TitleQuery)+"%")
	}
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit)
	}
	if opt.Offset > 0 {
		q = q.Offset(opt.Offset)
	}

	var recs []record
	if err := q.Order("created_at DESC, id DESC").Find(&recs).Error; err != nil {
		return nil, classifyError(err)
	}
	return recs, nil
}

// Update applies a partial update. Whenever status changes the completed
// flag is written in the same statement so the two never diverge.
func (r *implRepository) Update(ctx context.Context, sc model.Scope, opt repository.UpdateOptions) (model.Task, error) {
	updates := map[string]interface{}{}
	if opt.Title != nil {
		updates["title"] = *opt.Title
	}
	if opt.Description != nil {
		if *opt.Description == "" {
			updates["description"] = nil
		} else {
			updates["description"] = *opt.Description
		}
	}
	if opt.DueAt != nil {
		updates["due_at"] = *opt.DueAt
	}
	if opt.Status != nil {
		updates["legacy_completed"] = opt.Status.Completed()
		if !opt.LegacyOnly {
			updates["status"] = string(*opt.Status)
		}
	}

	if len(updates) == 0 {
		return r.Get(ctx, sc, opt.ID)
	}

	res := r.db.WithContext(ctx).
		Model(&record{}).
		Where("id = ? AND owner_id = ?", opt.ID, sc.OwnerID).
		Updates(updates)
	if res.Error != nil {
		r.l.Errorf(ctx, "sqldb.Update: %v", res.Error)
		return model.Task{}, classifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Task{}, repository.ErrNotFound
	}

	return r.Get(ctx, sc, opt.ID)
}

// Delete removes one task.
func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, sc.OwnerID).
		Delete(&record{})
	if res.Error != nil {
		r.l.Errorf(ctx, "sqldb.Delete: %v", res.Error)
		return classifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// classifyError maps driver errors to repository sentinels. The missing
// status column is detected by message because postgres and sqlite report
// it differently and neither exposes a typed error through the driver.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}

	msg := err.Error()
	if strings.Contains(msg, "no such column: status") {
		return repository.ErrSchemaMismatch
	}
	if strings.Contains(msg, `column "status"`) && strings.Contains(msg, "does not exist") {
		return repository.ErrSchemaMismatch
	}
	return err
}
