package board

import (
	"context"
	"sync"

	"taskboard/internal/model"
	pkgLog "taskboard/pkg/log"
)

// Board serializes column transitions per task for one owner. A move is
// applied to the client-visible view immediately; storage is updated
// behind it and the view rolls back if the write fails.
type Board struct {
	l       pkgLog.Logger
	ownerID string
	persist Persister

	mu    sync.Mutex
	slots map[string]*slot
}

// Load seeds a task's confirmed status, typically from a fresh read.
// An in-flight transition is never overwritten by a stale load.
func (b *Board) Load(taskID string, st model.Status) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.slots[taskID]
	if !ok {
		b.slots[taskID] = &slot{confirmed: st, view: st}
		return
	}
	if !s.inflight {
		s.confirmed = st
		s.view = st
	}
}

// View returns the optimistic status for a task, if the board tracks it.
func (b *Board) View(taskID string) (model.Status, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.slots[taskID]
	if !ok {
		return "", false
	}
	return s.view, true
}

// Forget drops a task from the board, used after deletion.
func (b *Board) Forget(taskID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.slots, taskID)
}

// Move transitions a task to the target column. The view flips before the
// write lands. When a write for the same task is already in flight the
// target is queued and any previously queued target is discarded, so the
// latest move wins. Queued moves return nil; their outcome is the driving
// call's to report. A failed write rolls the view back to the confirmed
// status and returns the error.
func (b *Board) Move(ctx context.Context, taskID string, target model.Status) error {
	b.mu.Lock()
	s, ok := b.slots[taskID]
	if !ok {
		s = &slot{confirmed: target, view: target}
		b.slots[taskID] = s
	}

	if !s.inflight && s.view == target && s.confirmed == target {
		b.mu.Unlock()
		return nil
	}

	s.view = target
	if s.inflight {
		s.pending = &target
		b.mu.Unlock()
		return nil
	}
	s.inflight = true
	b.mu.Unlock()

	return b.drive(ctx, taskID, s, target)
}

// drive runs the caller's write plus any targets queued behind it.
func (b *Board) drive(ctx context.Context, taskID string, s *slot, target model.Status) error {
	var callerErr error
	first := true

	for {
		err := b.persist(ctx, b.ownerID, taskID, target)

		b.mu.Lock()
		if err != nil {
			b.l.Warnf(ctx, "board: move %s/%s -> %s failed, rolling back: %v", b.ownerID, taskID, target, err)
			s.view = s.confirmed
			if first {
				callerErr = err
			}
		} else {
			s.confirmed = target
		}
		first = false

		if s.pending == nil {
			s.inflight = false
			b.mu.Unlock()
			return callerErr
		}

		target = *s.pending
		s.pending = nil
		s.view = target
		b.mu.Unlock()
	}
}
