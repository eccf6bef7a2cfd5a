package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/pkg/response"
)

// scope returns the owner scope set by the middleware. Routes are always
// registered behind it, so a missing scope is a wiring bug.
func (h *handler) scope(c *gin.Context) model.Scope {
	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		panic("scope middleware not installed")
	}
	return sc
}

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrInvalidStatus):
		response.BadRequest(c, err.Error())
	case errors.Is(err, task.ErrNothingParsed):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, task.ErrExtractorDown):
		response.BadGateway(c, err.Error())
	default:
		response.InternalError(c)
	}
}
