package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/pkg/response"
)

const (
	// OwnerHeader carries the caller's identity. There is no session layer
	// here; an upstream gateway is expected to have authenticated it.
	OwnerHeader = "X-Owner-ID"

	scopeKey = "taskboard/scope"
)

// Owner requires a caller identity and stores the request scope. The
// header is preferred; an "owner" query parameter or JSON body field is
// accepted for clients of the older surface. A request with no owner
// anywhere is a validation failure.
func (m Middleware) Owner() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetHeader(OwnerHeader)
		if ownerID == "" {
			ownerID = c.Query("owner")
		}
		if ownerID == "" {
			ownerID = ownerFromBody(c)
		}
		if ownerID == "" {
			response.Error(c, http.StatusBadRequest, "owner is required")
			c.Abort()
			return
		}
		c.Set(scopeKey, model.Scope{OwnerID: ownerID})
		c.Next()
	}
}

// ownerFromBody peeks at a JSON body for an "owner" field, restoring the
// body so the handler can still bind it.
func ownerFromBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	var body struct {
		Owner string `json:"owner"`
	}
	if json.Unmarshal(raw, &body) != nil {
		return ""
	}
	return body.Owner
}

// ScopeFromContext returns the scope stored by Owner.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
