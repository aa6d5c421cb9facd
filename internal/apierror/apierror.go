// Package apierror provides the standardized error response envelope.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, store errors, etc.).
package apierror

// Response is the canonical envelope for all 4xx/5xx JSON responses.
type Response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func New(msg string) *Response {
	return &Response{OK: false, Error: msg}
}
