package gateway

import (
	"errors"
	"fmt"
)

// UpstreamError captures a failed gateway call: the HTTP status the gateway
// returned (0 for transport failures) and the raw response body when present.
type UpstreamError struct {
	StatusCode int
	Body       string
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("gateway error: %s (status: %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("gateway error: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func IsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	ok := errors.As(err, &upErr)
	return upErr, ok
}
