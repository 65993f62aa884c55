package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/uniqo-ge/payment-server/internal/application"
)

// ErrorResponse is the failure body returned to the frontend: a stable
// message plus the underlying detail. Stack traces are never included.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteError maps application errors to HTTP responses.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := http.StatusInternalServerError
	message := "an internal error occurred"
	details := err.Error()

	if svcErr, ok := application.IsServiceError(err); ok {
		statusCode = svcErr.HTTPStatus
		message = svcErr.Message
		if svcErr.Err != nil {
			details = svcErr.Err.Error()
		} else {
			details = ""
		}
	}

	logger.Error("request failed",
		"status", statusCode,
		"error", err,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   message,
		Details: details,
	})
}
