package model_test

import (
	"testing"

	"taskboard/internal/model"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want model.Status
		ok   bool
	}{
		{"todo", model.StatusTodo, true},
		{"in_progress", model.StatusInProgress, true},
		{"inProgress", model.StatusInProgress, true},
		{"in-progress", model.StatusInProgress, true},
		{"completed", model.StatusCompleted, true},
		{" completed ", model.StatusCompleted, true},
		{"done", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := model.ParseStatus(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDeriveStatus(t *testing.T) {
	if got := model.DeriveStatus(true); got != model.StatusCompleted {
		t.Errorf("DeriveStatus(true) = %q, want completed", got)
	}
	// The legacy boolean cannot express in_progress.
	if got := model.DeriveStatus(false); got != model.StatusTodo {
		t.Errorf("DeriveStatus(false) = %q, want todo", got)
	}
}

func TestNormalizeLegacy(t *testing.T) {
	for _, st := range []model.Status{model.StatusTodo, model.StatusInProgress, model.StatusCompleted} {
		task := model.Task{Status: st, LegacyCompleted: !st.Completed()}
		task.NormalizeLegacy()
		if task.LegacyCompleted != (st == model.StatusCompleted) {
			t.Errorf("NormalizeLegacy with status %q: legacy flag = %v", st, task.LegacyCompleted)
		}
	}
}
