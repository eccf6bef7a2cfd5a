package extract

import (
	"errors"
	"fmt"
)

// Kind classifies extraction failures so delivery can choose the
// user-facing message.
type Kind int

const (
	// KindUnrecognized means no actionable item was found in the utterance.
	KindUnrecognized Kind = iota
	// KindServiceFailure means the text-understanding call itself failed.
	KindServiceFailure
)

// Error is a classified extraction failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnrecognized:
		return "no actionable task found in message"
	default:
		if e.Err != nil {
			return fmt.Sprintf("text understanding failed: %v", e.Err)
		}
		return "text understanding failed"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// NewUnrecognized builds the no-actionable-content failure.
func NewUnrecognized() *Error {
	return &Error{Kind: KindUnrecognized}
}

// NewServiceFailure wraps an upstream failure of the understanding service.
func NewServiceFailure(err error) *Error {
	return &Error{Kind: KindServiceFailure, Err: err}
}

// IsUnrecognized reports whether err is a classified unrecognized failure.
func IsUnrecognized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUnrecognized
}

// IsServiceFailure reports whether err is a classified service failure.
func IsServiceFailure(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindServiceFailure
}
