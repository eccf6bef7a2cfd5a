package http

import (
	"errors"
	"fmt"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/pkg/datemath"
)

// --- Request DTOs ---

type createReq struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

func (r createReq) toInput() (task.CreateInput, error) {
	in := task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
	}

	if r.DueDate != nil {
		at, err := parseDueDate(*r.DueDate)
		if err != nil {
			return in, err
		}
		in.DueAt = &at
	}
	if r.Status != nil {
		st, ok := model.ParseStatus(*r.Status)
		if !ok {
			return in, errBadStatus
		}
		in.Status = &st
	}
	return in, nil
}

type updateReq struct {
	ID          string  `json:"id"` // URI param wins over the body field
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

func (r updateReq) toInput() (task.UpdateInput, error) {
	in := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
	}

	if r.DueDate != nil {
		at, err := parseDueDate(*r.DueDate)
		if err != nil {
			return in, err
		}
		in.DueAt = &at
	}
	if r.Status != nil {
		st, ok := model.ParseStatus(*r.Status)
		if !ok {
			return in, errBadStatus
		}
		in.Status = &st
	}
	return in, nil
}

type parseReq struct {
	Message string `json:"message"`
	// Text is the older field name for the same payload.
	Text string `json:"text"`
}

func (r parseReq) utterance() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Text
}

type moveReq struct {
	TaskID string `json:"task_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

func (r moveReq) toInput() (task.MoveInput, error) {
	st, ok := model.ParseStatus(r.Status)
	if !ok {
		return task.MoveInput{}, errBadStatus
	}
	return task.MoveInput{TaskID: r.TaskID, Status: st}, nil
}

var (
	errBadDueDate = errors.New("due_date must be an RFC 3339 timestamp")
	errBadStatus  = errors.New("status must be one of todo, in_progress, completed")
)

func parseDueDate(s string) (time.Time, error) {
	at, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errBadDueDate
	}
	return at.UTC(), nil
}

// --- Response DTOs ---

type taskResp struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	DueDate         *string `json:"due_date"`
	Status          string  `json:"status"`
	LegacyCompleted bool    `json:"legacy_completed"`
	CreatedAt       string  `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          string(t.Status),
		LegacyCompleted: t.LegacyCompleted,
		CreatedAt:       datemath.FormatUTC(t.CreatedAt),
	}
	if t.DueAt != nil {
		due := datemath.FormatUTC(*t.DueAt)
		resp.DueDate = &due
	}
	return resp
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type failedDraftResp struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type deleteResp struct {
	Success bool `json:"success"`
}

type parseResp struct {
	Message string            `json:"message"`
	Created []taskResp        `json:"created"`
	Failed  []failedDraftResp `json:"failed"`
}

func newParseResp(out task.IngestOutput) parseResp {
	resp := parseResp{
		Message: parseMessage(out),
		Created: newTaskListResp(out.Created),
		Failed:  []failedDraftResp{},
	}
	for _, f := range out.Failed {
		resp.Failed = append(resp.Failed, failedDraftResp{Index: f.Index, Title: f.Title, Reason: f.Reason})
	}
	return resp
}

// parseMessage builds the conversational confirmation shown in chat UIs.
func parseMessage(out task.IngestOutput) string {
	var msg string
	switch len(out.Created) {
	case 1:
		msg = fmt.Sprintf("I've created the task %q for you.", out.Created[0].Title)
	default:
		msg = fmt.Sprintf("I've created %d tasks for you.", len(out.Created))
	}
	if n := len(out.Failed); n > 0 {
		msg += fmt.Sprintf(" %d item(s) could not be saved.", n)
	}
	return msg
}

type boardResp struct {
	Todo       []taskResp `json:"todo"`
	InProgress []taskResp `json:"in_progress"`
	Completed  []taskResp `json:"completed"`
}

func newBoardResp(out task.BoardOutput) boardResp {
	return boardResp{
		Todo:       newTaskListResp(out.Todo),
		InProgress: newTaskListResp(out.InProgress),
		Completed:  newTaskListResp(out.Completed),
	}
}

type statsResp struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	DueToday   int `json:"due_today"`
	Overdue    int `json:"overdue"`
}

type suggestResp struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
	Stale       bool     `json:"stale"`
}
