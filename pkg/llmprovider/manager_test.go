package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskboard/pkg/llmprovider"
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

type fakeProvider struct {
	name  string
	out   string
	err   error
	calls int
}

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.out, f.err
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return "test-model" }

func TestManagerFirstProviderWins(t *testing.T) {
	first := &fakeProvider{name: "gemini", out: "ok"}
	second := &fakeProvider{name: "openai", out: "never"}
	m := llmprovider.NewManager(
		[]llmprovider.Provider{first, second},
		&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
		nopLogger{},
	)

	out, err := m.Complete(context.Background(), "p")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "ok" {
		t.Errorf("out = %q", out)
	}
	if second.calls != 0 {
		t.Errorf("second provider called %d times, want 0", second.calls)
	}
}

func TestManagerFallsBack(t *testing.T) {
	first := &fakeProvider{name: "gemini", err: errors.New("503")}
	second := &fakeProvider{name: "openai", out: "rescued"}
	m := llmprovider.NewManager(
		[]llmprovider.Provider{first, second},
		&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
		nopLogger{},
	)

	out, err := m.Complete(context.Background(), "p")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "rescued" {
		t.Errorf("out = %q", out)
	}
	if first.calls != 2 {
		t.Errorf("first provider retried %d times, want 2", first.calls)
	}
}

func TestManagerFallbackDisabled(t *testing.T) {
	first := &fakeProvider{name: "gemini", err: errors.New("503")}
	second := &fakeProvider{name: "openai", out: "never"}
	m := llmprovider.NewManager(
		[]llmprovider.Provider{first, second},
		&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
		nopLogger{},
	)

	_, err := m.Complete(context.Background(), "p")
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Fatalf("want ErrAllProvidersFailed, got %v", err)
	}
	if second.calls != 0 {
		t.Errorf("second provider called with fallback disabled")
	}
}

func TestManagerNoProviders(t *testing.T) {
	m := llmprovider.NewManager(nil, &llmprovider.Config{RetryAttempts: 1}, nopLogger{})
	if _, err := m.Complete(context.Background(), "p"); !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Fatalf("want ErrNoProvidersConfigured, got %v", err)
	}
}
