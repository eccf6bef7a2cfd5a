package suggest_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"taskboard/internal/suggest"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestSuggestReturnsMatches(t *testing.T) {
	fetch := func(ctx context.Context, ownerID, query string, limit int) ([]string, error) {
		return []string{"Call client", "Call dentist"}, nil
	}
	s := suggest.NewSuggester(nopLogger{}, fetch, suggest.Config{Debounce: time.Millisecond})

	res, err := s.Suggest(context.Background(), "o1", "call")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if res.Stale {
		t.Fatal("lone query must not be stale")
	}
	if len(res.Suggestions) != 2 {
		t.Errorf("got %v", res.Suggestions)
	}
}

func TestSuggestDropsSuperseded(t *testing.T) {
	var fetches int32
	fetch := func(ctx context.Context, ownerID, query string, limit int) ([]string, error) {
		atomic.AddInt32(&fetches, 1)
		return []string{query}, nil
	}
	s := suggest.NewSuggester(nopLogger{}, fetch, suggest.Config{Debounce: 60 * time.Millisecond})

	var wg sync.WaitGroup
	var first, second suggest.Result
	wg.Add(2)
	go func() {
		defer wg.Done()
		first, _ = s.Suggest(context.Background(), "o1", "ca")
	}()
	time.Sleep(10 * time.Millisecond) // keystroke arrives inside the window
	go func() {
		defer wg.Done()
		second, _ = s.Suggest(context.Background(), "o1", "cal")
	}()
	wg.Wait()

	if !first.Stale {
		t.Error("superseded query must be reported stale")
	}
	if len(first.Suggestions) != 0 {
		t.Errorf("stale query leaked suggestions: %v", first.Suggestions)
	}
	if second.Stale || len(second.Suggestions) != 1 {
		t.Errorf("latest query = %+v", second)
	}
	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Errorf("storage hit %d times, want 1", n)
	}
}

func TestSuggestOwnersAreIndependent(t *testing.T) {
	fetch := func(ctx context.Context, ownerID, query string, limit int) ([]string, error) {
		return []string{ownerID + ":" + query}, nil
	}
	s := suggest.NewSuggester(nopLogger{}, fetch, suggest.Config{Debounce: 20 * time.Millisecond})

	var wg sync.WaitGroup
	var a, b suggest.Result
	wg.Add(2)
	go func() { defer wg.Done(); a, _ = s.Suggest(context.Background(), "o1", "ca") }()
	go func() { defer wg.Done(); b, _ = s.Suggest(context.Background(), "o2", "re") }()
	wg.Wait()

	if a.Stale || b.Stale {
		t.Errorf("queries from different owners must not supersede each other: %+v %+v", a, b)
	}
}

func TestSuggestCaches(t *testing.T) {
	var fetches int32
	fetch := func(ctx context.Context, ownerID, query string, limit int) ([]string, error) {
		atomic.AddInt32(&fetches, 1)
		return []string{"Review proposal"}, nil
	}
	s := suggest.NewSuggester(nopLogger{}, fetch, suggest.Config{Debounce: time.Millisecond})

	for i := 0; i < 3; i++ {
		if _, err := s.Suggest(context.Background(), "o1", "rev"); err != nil {
			t.Fatalf("Suggest: %v", err)
		}
	}
	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Errorf("storage hit %d times, want 1", n)
	}
}

func TestSuggestEmptyQuery(t *testing.T) {
	fetch := func(ctx context.Context, ownerID, query string, limit int) ([]string, error) {
		t.Fatal("empty query must not reach storage")
		return nil, nil
	}
	s := suggest.NewSuggester(nopLogger{}, fetch, suggest.Config{Debounce: time.Millisecond})

	res, err := s.Suggest(context.Background(), "o1", "   ")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(res.Suggestions) != 0 {
		t.Errorf("got %v", res.Suggestions)
	}
}
