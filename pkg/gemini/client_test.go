package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskboard/pkg/gemini"
)

func TestNewValidation(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("missing API key must be rejected")
	}
	if _, err := gemini.New(gemini.Config{APIKey: "k"}); err != nil {
		t.Fatalf("defaults should apply: %v", err)
	}
}

func TestGenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "models/gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"[{\"title\":"},{"text":"\"Meeting\"}]"}]}}]}`))
	}))
	defer srv.Close()

	c, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := c.GenerateText(context.Background(), "parse this")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if out != `[{"title":"Meeting"}]` {
		t.Errorf("out = %s", out)
	}
}

func TestGenerateTextAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":429}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.GenerateText(context.Background(), "parse this"); err == nil {
		t.Fatal("non-200 must surface an error")
	}
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.GenerateText(context.Background(), "parse this"); err == nil {
		t.Fatal("empty candidates must surface an error")
	}
}
