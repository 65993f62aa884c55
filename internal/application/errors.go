package application

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError wraps component failures with the code and HTTP status the
// REST boundary should surface.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeAuth         = "AUTH_ERROR"
	ErrCodeUpstream     = "UPSTREAM_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

func NewAuthFailedError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeAuth,
		Message:    "failed to obtain gateway credential",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewUpstreamFailedError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstream,
		Message:    "gateway request failed",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "invalid request",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "an internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
