package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the body as-is.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Created sends 201 JSON with the body as-is.
func Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends the given status with an error envelope.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrResp{Error: message})
}

// BadRequest sends 400 with an error envelope.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends 404 with an error envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// UnprocessableEntity sends 422 with an error envelope.
func UnprocessableEntity(c *gin.Context, message string) {
	Error(c, http.StatusUnprocessableEntity, message)
}

// InternalError sends 500 with a generic message, never leaking internals.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, DefaultErrorMessage)
}

// BadGateway sends 502 with an error envelope, used when an upstream
// dependency fails.
func BadGateway(c *gin.Context, message string) {
	Error(c, http.StatusBadGateway, message)
}
