package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
	ErrEmptyInput    = errors.New("input text is empty")
	ErrNothingParsed = errors.New("no tasks recognized in input")
	ErrInvalidStatus = errors.New("invalid status")
	ErrExtractorDown = errors.New("extraction service unavailable")
)
