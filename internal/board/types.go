package board

import (
	"context"

	"taskboard/internal/model"
)

// Persister commits a column transition to storage. The board never talks
// to storage directly; the owning usecase injects this.
type Persister func(ctx context.Context, ownerID, taskID string, st model.Status) error

// slot tracks one task's transition state.
//
// confirmed is the last status storage acknowledged, view is what the
// client currently sees (optimistic), pending holds a target queued while
// a write is in flight. A newer target overwrites pending: the latest
// drag wins.
type slot struct {
	confirmed model.Status
	view      model.Status
	inflight  bool
	pending   *model.Status
}
