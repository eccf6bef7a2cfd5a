package response

// DefaultErrorMessage hides internal failure detail from clients.
const DefaultErrorMessage = "internal server error"

// ErrResp is the error envelope for every non-2xx response.
type ErrResp struct {
	Error string `json:"error"`
}
