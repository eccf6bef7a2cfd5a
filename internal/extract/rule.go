package extract

import (
	"context"
	"strings"
	"unicode"

	"taskboard/internal/model"
	"taskboard/pkg/datemath"
	"taskboard/pkg/log"
)

// RuleEngine is the deterministic, bilingual extraction strategy. It needs
// no network and yields reproducible drafts, which also makes it the
// reference implementation for extraction behavior in tests.
type RuleEngine struct {
	l log.Logger
}

// NewRuleEngine creates the rule-based extractor.
func NewRuleEngine(l log.Logger) *RuleEngine {
	return &RuleEngine{l: l}
}

// Extract implements Extractor.
func (e *RuleEngine) Extract(ctx context.Context, utterance string, ref Reference) (Result, error) {
	resolver := datemath.NewResolverIn(ref.Location)

	var drafts []Draft
	for _, clause := range segment(utterance) {
		lower := strings.ToLower(clause)
		if !actionable(lower) {
			continue
		}
		drafts = append(drafts, e.buildDraft(clause, lower, resolver, ref))
	}

	if len(drafts) == 0 {
		e.l.Infof(ctx, "rule extractor: nothing actionable in %d-byte utterance", len(utterance))
		return Result{}, NewUnrecognized()
	}
	return fromDrafts(drafts), nil
}

func (e *RuleEngine) buildDraft(clause, lower string, resolver *datemath.Resolver, ref Reference) Draft {
	draft := Draft{Status: inferStatus(lower)}

	res := resolver.Resolve(lower, ref.Now)
	if res != nil {
		at := res.At
		draft.DueAt = &at
	}

	title, description := deriveTitle(clause, res)
	draft.Title = title
	if description != "" {
		draft.Description = &description
	}
	return draft
}

// actionable reports whether a clause names a task. A status signal alone
// counts: reporting progress on something is still a task mention.
func actionable(lower string) bool {
	return containsAnyWord(lower, actionKeywords) ||
		containsAnyWord(lower, completedSignals) ||
		containsAnyWord(lower, inProgressSignals)
}

// inferStatus applies the fixed precedence: completed signals win over
// in-progress signals, anything else is todo.
func inferStatus(lower string) *model.Status {
	st := model.StatusTodo
	switch {
	case containsAnyWord(lower, completedSignals):
		st = model.StatusCompleted
	case containsAnyWord(lower, inProgressSignals):
		st = model.StatusInProgress
	}
	return &st
}

const maxTitleWords = 10

// deriveTitle reduces a clause to a concise action phrase: date/time
// expressions go first, then leading intent phrases and articles, then
// dangling connector words. A clause too long for a title keeps its full
// cleaned text as the description.
func deriveTitle(clause string, res *datemath.Resolution) (string, string) {
	working := clause
	if res != nil {
		working = removeSpans(clause, res.Spans)
	}

	working = strings.Join(strings.Fields(working), " ")
	working = stripIntentPrefixes(working)
	working = stripLeadingArticles(working)
	working = trimDangling(working)

	words := strings.Fields(working)
	if len(words) == 0 {
		// Everything was a date expression; fall back to the raw clause.
		words = strings.Fields(clause)
	}

	description := ""
	if len(words) > maxTitleWords {
		description = capitalize(strings.Join(words, " "))
		words = words[:maxTitleWords]
	}

	return capitalize(strings.Trim(strings.Join(words, " "), ",;:.")), description
}

func removeSpans(s string, spans [][2]int) string {
	if len(spans) == 0 {
		return s
	}
	keep := make([]bool, len(s))
	for i := range keep {
		keep[i] = true
	}
	for _, sp := range spans {
		for i := sp[0]; i < sp[1] && i < len(s); i++ {
			keep[i] = false
		}
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if keep[i] {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func stripIntentPrefixes(s string) string {
	for changed := true; changed; {
		changed = false
		lower := strings.ToLower(s)
		for _, p := range intentPrefixes {
			if strings.HasPrefix(lower, p+" ") {
				s = strings.TrimSpace(s[len(p)+1:])
				changed = true
				break
			}
		}
	}
	return s
}

func stripLeadingArticles(s string) string {
	for changed := true; changed; {
		changed = false
		lower := strings.ToLower(s)
		for _, a := range leadingArticles {
			if strings.HasPrefix(lower, a+" ") {
				s = strings.TrimSpace(s[len(a)+1:])
				changed = true
				break
			}
		}
	}
	return s
}

func trimDangling(s string) string {
	words := strings.Fields(s)
	for len(words) > 1 && isDangling(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	for len(words) > 1 && isDangling(words[0]) {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

func isDangling(w string) bool {
	w = strings.ToLower(strings.Trim(w, ",;:."))
	for _, d := range danglingWords {
		if w == d {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
