package extract

import (
	"time"

	"taskboard/internal/model"
)

// Reference anchors relative date expressions: the caller's "now" and the
// time zone it should be interpreted in.
type Reference struct {
	Now      time.Time
	Location *time.Location
}

// Draft is an unpersisted candidate task produced by extraction.
type Draft struct {
	Title       string
	Description *string       // nil when the utterance adds no detail
	DueAt       *time.Time    // absolute UTC instant, nil when no date stated
	Status      *model.Status // nil means the caller applies the todo default
}

// Result is the extraction output. Exactly one of Draft or Drafts is set:
// Draft when the utterance holds a single actionable item, Drafts (length
// two or more, source order) when it holds several. Consumers branch on
// arity; a single item is never wrapped in a one-element sequence.
type Result struct {
	Draft  *Draft
	Drafts []Draft
}

// Multiple reports whether the result carries a sequence.
func (r Result) Multiple() bool {
	return r.Draft == nil
}

// All flattens the result for callers that iterate regardless of arity.
func (r Result) All() []Draft {
	if r.Draft != nil {
		return []Draft{*r.Draft}
	}
	return r.Drafts
}

func fromDrafts(drafts []Draft) Result {
	if len(drafts) == 1 {
		return Result{Draft: &drafts[0]}
	}
	return Result{Drafts: drafts}
}
