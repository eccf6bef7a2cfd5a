package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a single task for the calling owner.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string    true "Owner identity"
// @Param       body       body   createReq true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.ErrResp
// @Failure     500 {object} response.ErrResp
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	input, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.Created(c, newTaskResp(created))
}

// List godoc
// @Summary     List tasks
// @Description Returns the owner's tasks, optionally filtered by status.
// @Tags        Tasks
// @Produce     json
// @Param       X-Owner-ID header string true  "Owner identity"
// @Param       status     query  string false "Filter by status (todo/in_progress/completed)"
// @Success     200 {array}  taskResp
// @Failure     400 {object} response.ErrResp
// @Failure     500 {object} response.ErrResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	var input task.ListInput
	if raw := c.Query("status"); raw != "" {
		st, ok := model.ParseStatus(raw)
		if !ok {
			response.BadRequest(c, errBadStatus.Error())
			return
		}
		input.Status = &st
	}

	tasks, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskListResp(tasks))
}

// Detail godoc
// @Summary     Get one task
// @Tags        Tasks
// @Produce     json
// @Param       X-Owner-ID header string true "Owner identity"
// @Param       id         path   string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.ErrResp
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	got, err := h.uc.Get(ctx, sc, c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(got))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update; omitted fields are left untouched.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string    true "Owner identity"
// @Param       id         path   string    true "Task ID"
// @Param       body       body   updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.ErrResp
// @Failure     404 {object} response.ErrResp
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Param       X-Owner-ID header string true "Owner identity"
// @Param       id         path   string true "Task ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.ErrResp
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		response.BadRequest(c, errMissingID.Error())
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, deleteResp{Success: true})
}

// Parse godoc
// @Summary     Create tasks from natural language
// @Description Extracts one or more tasks from an English or Indonesian
// @Description utterance and persists every recognized draft. Drafts that
// @Description fail to persist are reported individually.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string   true "Owner identity"
// @Param       body       body   parseReq true "Utterance"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.ErrResp
// @Failure     422 {object} response.ErrResp "Nothing recognized"
// @Failure     502 {object} response.ErrResp "Extraction service unavailable"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	input, err := h.processParseReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.uc.Ingest(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Ingest: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newParseResp(out))
}

// Board godoc
// @Summary     Get the board
// @Description Returns the owner's tasks grouped into the three columns,
// @Description including optimistic positions of in-flight moves.
// @Tags        Board
// @Produce     json
// @Param       X-Owner-ID header string true "Owner identity"
// @Success     200 {object} boardResp
// @Failure     500 {object} response.ErrResp
// @Router      /api/v1/board [GET]
func (h *handler) Board(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	out, err := h.uc.Board(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Board: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newBoardResp(out))
}

// Move godoc
// @Summary     Move a task between columns
// @Description Applies a column transition. Concurrent moves of the same
// @Description task are serialized; a storage failure rolls the move back.
// @Tags        Board
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string  true "Owner identity"
// @Param       body       body   moveReq true "Transition"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.ErrResp
// @Failure     404 {object} response.ErrResp
// @Router      /api/v1/board/move [POST]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	input, err := h.processMoveReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	moved, err := h.uc.Move(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Move: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(moved))
}

// Stats godoc
// @Summary     Task counts per column
// @Tags        Tasks
// @Produce     json
// @Param       X-Owner-ID header string true "Owner identity"
// @Success     200 {object} statsResp
// @Failure     500 {object} response.ErrResp
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	out, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, statsResp{
		Total:      out.Total,
		Todo:       out.Todo,
		InProgress: out.InProgress,
		Completed:  out.Completed,
		DueToday:   out.DueToday,
		Overdue:    out.Overdue,
	})
}

// Suggest godoc
// @Summary     Search suggestions
// @Description Debounced title suggestions for a search box. A query
// @Description superseded by a newer one returns stale=true and no items.
// @Tags        Tasks
// @Produce     json
// @Param       X-Owner-ID header string true "Owner identity"
// @Param       q          query  string true "Query prefix"
// @Success     200 {object} suggestResp
// @Failure     500 {object} response.ErrResp
// @Router      /api/v1/tasks/suggest [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	out, err := h.uc.Suggest(ctx, sc, task.SuggestInput{Query: c.Query("q")})
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, suggestResp{
		Query:       out.Query,
		Suggestions: out.Suggestions,
		Stale:       out.Stale,
	})
}
