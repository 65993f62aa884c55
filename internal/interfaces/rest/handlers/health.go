package handlers

import (
	"net/http"
	"time"
)

const serverVersion = "1.0.0"

// HandleRoot answers the liveness/info probe at the server root.
func (h *Handlers) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Uniqo Payment Server",
		"version": serverVersion,
	})
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
