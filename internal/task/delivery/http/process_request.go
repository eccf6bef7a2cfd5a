package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskboard/internal/task"
)

var (
	errMissingID      = errors.New("id is required")
	errMissingMessage = errors.New("message is required")
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (task.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateInput{}, err
	}
	return req.toInput()
}

// processUpdateReq binds the update request body plus the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (task.UpdateInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.UpdateInput{}, err
	}
	if id := c.Param("id"); id != "" {
		req.ID = id
	}
	if req.ID == "" {
		return task.UpdateInput{}, errMissingID
	}
	return req.toInput()
}

// processParseReq binds the natural-language parse request body.
func (h *handler) processParseReq(c *gin.Context) (task.IngestInput, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.IngestInput{}, err
	}
	utterance := req.utterance()
	if utterance == "" {
		return task.IngestInput{}, errMissingMessage
	}
	return task.IngestInput{Utterance: utterance}, nil
}

// processMoveReq binds and validates the board move request body.
func (h *handler) processMoveReq(c *gin.Context) (task.MoveInput, error) {
	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.MoveInput{}, err
	}
	return req.toInput()
}
