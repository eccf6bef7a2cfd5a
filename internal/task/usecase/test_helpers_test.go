package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"taskboard/internal/extract"
	"taskboard/internal/model"
	"taskboard/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory repository honoring owner scoping. Writes that
// include the status column fail with ErrSchemaMismatch when
// noStatusColumn is set, mimicking tables that predate it.
type mockRepo struct {
	mu             sync.Mutex
	tasks          []model.Task
	failTitles     map[string]bool
	noStatusColumn bool
	updateErr      error
	legacyWrites   int
	seq            int
}

func newMockRepo() *mockRepo {
	return &mockRepo{failTitles: map[string]bool{}}
}

func (m *mockRepo) Create(ctx context.Context, sc model.Scope, opt repository.CreateOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failTitles[opt.Title] {
		return model.Task{}, errors.New("insert failed")
	}
	if m.noStatusColumn && !opt.LegacyOnly {
		return model.Task{}, repository.ErrSchemaMismatch
	}

	st := opt.Status
	if st == "" {
		st = model.StatusTodo
	}
	if opt.LegacyOnly {
		st = model.DeriveStatus(st.Completed())
	}

	m.seq++
	t := model.Task{
		ID:              opt.ID,
		OwnerID:         sc.OwnerID,
		Title:           opt.Title,
		Description:     opt.Description,
		DueAt:           opt.DueAt,
		Status:          st,
		LegacyCompleted: st.Completed(),
		CreatedAt:       time.Now().Add(time.Duration(m.seq) * time.Millisecond),
	}
	if opt.LegacyOnly {
		m.legacyWrites++
	}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepo) Get(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tasks {
		if t.ID == id && t.OwnerID == sc.OwnerID {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepo) List(ctx context.Context, sc model.Scope, opt repository.ListOptions) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Task
	for _, t := range m.tasks {
		if t.OwnerID != sc.OwnerID {
			continue
		}
		if opt.Status != nil && t.Status != *opt.Status {
			continue
		}
		if opt.TitleQuery != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(opt.TitleQuery)) {
			continue
		}
		out = append(out, t)
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, sc model.Scope, opt repository.UpdateOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateErr != nil {
		return model.Task{}, m.updateErr
	}
	if m.noStatusColumn && opt.Status != nil && !opt.LegacyOnly {
		return model.Task{}, repository.ErrSchemaMismatch
	}

	for i := range m.tasks {
		t := &m.tasks[i]
		if t.ID != opt.ID || t.OwnerID != sc.OwnerID {
			continue
		}
		if opt.Title != nil {
			t.Title = *opt.Title
		}
		if opt.Description != nil {
			if *opt.Description == "" {
				t.Description = nil
			} else {
				t.Description = opt.Description
			}
		}
		if opt.DueAt != nil {
			t.DueAt = opt.DueAt
		}
		if opt.Status != nil {
			t.LegacyCompleted = opt.Status.Completed()
			if opt.LegacyOnly {
				m.legacyWrites++
				t.Status = model.DeriveStatus(t.LegacyCompleted)
			} else {
				t.Status = *opt.Status
			}
		}
		return *t, nil
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.tasks {
		if t.ID == id && t.OwnerID == sc.OwnerID {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// fakeExtractor returns canned drafts or a canned error.
type fakeExtractor struct {
	result extract.Result
	err    error
}

func (f *fakeExtractor) Extract(ctx context.Context, utterance string, ref extract.Reference) (extract.Result, error) {
	return f.result, f.err
}

func strptr(s string) *string { return &s }

func statusPtr(st model.Status) *model.Status { return &st }
