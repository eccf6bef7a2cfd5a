package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/config"
	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/task"
	taskhttp "taskboard/internal/task/delivery/http"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUseCase returns canned values and records the scope it was called with.
type mockUseCase struct {
	lastScope  model.Scope
	lastIngest task.IngestInput

	createOut model.Task
	createErr error
	listOut   []model.Task
	getOut    model.Task
	getErr    error
	updateOut model.Task
	updateErr error
	deleteErr error
	ingestOut task.IngestOutput
	ingestErr error
	moveOut   model.Task
	moveErr   error
	boardOut  task.BoardOutput
	statsOut  task.StatsOutput
	sugOut    task.SuggestOutput
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, in task.CreateInput) (model.Task, error) {
	m.lastScope = sc
	return m.createOut, m.createErr
}
func (m *mockUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	m.lastScope = sc
	return m.getOut, m.getErr
}
func (m *mockUseCase) List(ctx context.Context, sc model.Scope, in task.ListInput) ([]model.Task, error) {
	m.lastScope = sc
	return m.listOut, nil
}
func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, in task.UpdateInput) (model.Task, error) {
	m.lastScope = sc
	return m.updateOut, m.updateErr
}
func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	m.lastScope = sc
	return m.deleteErr
}
func (m *mockUseCase) Ingest(ctx context.Context, sc model.Scope, in task.IngestInput) (task.IngestOutput, error) {
	m.lastScope = sc
	m.lastIngest = in
	return m.ingestOut, m.ingestErr
}
func (m *mockUseCase) Move(ctx context.Context, sc model.Scope, in task.MoveInput) (model.Task, error) {
	m.lastScope = sc
	return m.moveOut, m.moveErr
}
func (m *mockUseCase) Board(ctx context.Context, sc model.Scope) (task.BoardOutput, error) {
	m.lastScope = sc
	return m.boardOut, nil
}
func (m *mockUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	m.lastScope = sc
	return m.statsOut, nil
}
func (m *mockUseCase) Suggest(ctx context.Context, sc model.Scope, in task.SuggestInput) (task.SuggestOutput, error) {
	m.lastScope = sc
	return m.sugOut, nil
}

func newRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, &config.Config{})
	taskhttp.RegisterRoutes(r.Group("/api/v1"), taskhttp.New(&mockLogger{}, uc), mw)
	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.OwnerHeader, "o1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTask(t *testing.T) {
	due := time.Date(2025, 10, 17, 14, 0, 0, 0, time.UTC)
	uc := &mockUseCase{createOut: model.Task{
		ID: "t1", OwnerID: "o1", Title: "Meeting", DueAt: &due,
		Status: model.StatusTodo, CreatedAt: time.Now().UTC(),
	}}
	r := newRouter(uc)

	w := doReq(t, r, http.MethodPost, "/api/v1/tasks",
		`{"title":"Meeting","due_date":"2025-10-17T14:00:00Z"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.lastScope.OwnerID != "o1" {
		t.Errorf("scope = %+v", uc.lastScope)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["due_date"] != "2025-10-17T14:00:00.000Z" {
		t.Errorf("due_date = %v, want millisecond UTC form", resp["due_date"])
	}
}

func TestCreateTaskRejectsBadStatus(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w := doReq(t, r, http.MethodPost, "/api/v1/tasks", `{"title":"X","status":"archived"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"error"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestMissingOwnerIsValidationError(t *testing.T) {
	r := newRouter(&mockUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != `{"error":"owner is required"}` {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestOwnerFromBodyField(t *testing.T) {
	uc := &mockUseCase{createOut: model.Task{ID: "t1", Title: "Buy milk", Status: model.StatusTodo}}
	r := newRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks",
		strings.NewReader(`{"title":"Buy milk","owner":"o3"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if uc.lastScope.OwnerID != "o3" {
		t.Errorf("scope owner = %q, want o3", uc.lastScope.OwnerID)
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := &mockUseCase{getErr: task.ErrTaskNotFound}
	r := newRouter(uc)

	w := doReq(t, r, http.MethodGet, "/api/v1/tasks/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != `{"error":"task not found"}` {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestOwnerQueryParamFallback(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?owner=o2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.lastScope.OwnerID != "o2" {
		t.Errorf("scope owner = %q, want o2", uc.lastScope.OwnerID)
	}
}

func TestUpdateAcceptsBodyID(t *testing.T) {
	uc := &mockUseCase{updateOut: model.Task{ID: "t9", Title: "Renamed", Status: model.StatusTodo}}
	r := newRouter(uc)

	w := doReq(t, r, http.MethodPut, "/api/v1/tasks", `{"id":"t9","title":"Renamed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteReturnsSuccess(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w := doReq(t, r, http.MethodDelete, "/api/v1/tasks/t1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != `{"success":true}` {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestParseMessageField(t *testing.T) {
	uc := &mockUseCase{ingestOut: task.IngestOutput{
		Created: []model.Task{{ID: "t1", Title: "Meeting", Status: model.StatusTodo}},
	}}
	r := newRouter(uc)

	w := doReq(t, r, http.MethodPost, "/api/v1/parse",
		`{"message":"Schedule a meeting for tomorrow at 2 PM"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got := uc.lastIngest.Utterance; got != "Schedule a meeting for tomorrow at 2 PM" {
		t.Errorf("utterance = %q", got)
	}
}

func TestParseRequiresMessage(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w := doReq(t, r, http.MethodPost, "/api/v1/parse", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestParseUnrecognized(t *testing.T) {
	uc := &mockUseCase{ingestErr: task.ErrNothingParsed}
	r := newRouter(uc)

	w := doReq(t, r, http.MethodPost, "/api/v1/parse", `{"text":"asdkj qwoe"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestParseExtractorDown(t *testing.T) {
	uc := &mockUseCase{ingestErr: task.ErrExtractorDown}
	r := newRouter(uc)

	w := doReq(t, r, http.MethodPost, "/api/v1/parse", `{"text":"buy milk"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestParsePartialSuccess(t *testing.T) {
	uc := &mockUseCase{ingestOut: task.IngestOutput{
		Created: []model.Task{{ID: "t1", Title: "Call client", Status: model.StatusTodo}},
		Failed:  []task.FailedDraft{{Index: 1, Title: "Review proposal", Reason: "insert failed"}},
	}}
	r := newRouter(uc)

	w := doReq(t, r, http.MethodPost, "/api/v1/parse", `{"text":"call client and review proposal"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Message string            `json:"message"`
		Created []json.RawMessage `json:"created"`
		Failed  []struct {
			Index int `json:"index"`
		} `json:"failed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Created) != 1 || len(resp.Failed) != 1 || resp.Failed[0].Index != 1 {
		t.Errorf("body = %s", w.Body.String())
	}
	want := `I've created the task "Call client" for you. 1 item(s) could not be saved.`
	if resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
}

func TestMoveAcceptsLegacySpelling(t *testing.T) {
	uc := &mockUseCase{moveOut: model.Task{ID: "t1", Status: model.StatusInProgress}}
	r := newRouter(uc)

	w := doReq(t, r, http.MethodPost, "/api/v1/board/move", `{"task_id":"t1","status":"inProgress"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"status":"in_progress"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestSuggest(t *testing.T) {
	uc := &mockUseCase{sugOut: task.SuggestOutput{
		Query:       "ca",
		Suggestions: []string{"Call client"},
	}}
	r := newRouter(uc)

	w := doReq(t, r, http.MethodGet, "/api/v1/tasks/suggest?q=ca", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Call client") {
		t.Errorf("body = %s", w.Body.String())
	}
}
