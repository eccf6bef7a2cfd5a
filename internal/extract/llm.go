package extract

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/pkg/log"
)

// Completer is the text-understanding capability the delegated strategy
// consumes. llmprovider.Manager satisfies it.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LLMEngine delegates extraction to a text-understanding service. It holds
// no state beyond its dependencies; the service call is the only
// suspension point.
type LLMEngine struct {
	l         log.Logger
	completer Completer
}

// NewLLMEngine creates the delegated extractor.
func NewLLMEngine(l log.Logger, completer Completer) *LLMEngine {
	return &LLMEngine{l: l, completer: completer}
}

// wireDraft is the JSON shape the prompt asks for.
type wireDraft struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

type wireError struct {
	Error string `json:"error"`
}

// Extract implements Extractor.
func (e *LLMEngine) Extract(ctx context.Context, utterance string, ref Reference) (Result, error) {
	text, err := e.completer.Complete(ctx, buildPrompt(utterance, ref))
	if err != nil {
		e.l.Warnf(ctx, "llm extractor: completion failed: %v", err)
		return Result{}, NewServiceFailure(err)
	}

	cleaned := sanitizeJSONResponse(text)

	// Array first: a single object would also decode into some array
	// shapes, never the other way around.
	var many []wireDraft
	if err := json.Unmarshal([]byte(cleaned), &many); err == nil {
		return e.fromWire(ctx, many)
	}

	var one wireDraft
	if err := json.Unmarshal([]byte(cleaned), &one); err == nil && one.Title != "" {
		return e.fromWire(ctx, []wireDraft{one})
	}

	var we wireError
	if err := json.Unmarshal([]byte(cleaned), &we); err == nil && we.Error != "" {
		return Result{}, NewUnrecognized()
	}

	e.l.Errorf(ctx, "llm extractor: unparseable response: %q", text)
	return Result{}, NewServiceFailure(errMalformedResponse)
}

var errMalformedResponse = jsonError("malformed response payload")

type jsonError string

func (e jsonError) Error() string { return string(e) }

func (e *LLMEngine) fromWire(ctx context.Context, wire []wireDraft) (Result, error) {
	drafts := make([]Draft, 0, len(wire))
	for _, w := range wire {
		title := strings.TrimSpace(w.Title)
		if title == "" {
			continue
		}

		d := Draft{Title: title}

		if w.Description != nil {
			if desc := strings.TrimSpace(*w.Description); desc != "" {
				d.Description = &desc
			}
		}

		if w.DueDate != nil && *w.DueDate != "" {
			at, err := time.Parse(time.RFC3339, *w.DueDate)
			if err != nil {
				e.l.Warnf(ctx, "llm extractor: dropping unparseable due date %q for %q", *w.DueDate, title)
			} else {
				utc := at.UTC()
				d.DueAt = &utc
			}
		}

		if w.Status != nil {
			if st, ok := model.ParseStatus(*w.Status); ok {
				d.Status = &st
			}
		}

		drafts = append(drafts, d)
	}

	if len(drafts) == 0 {
		return Result{}, NewUnrecognized()
	}
	return fromDrafts(drafts), nil
}

var reCodeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse strips the markdown fences and surrounding prose
// that language models add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := reCodeFence.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
