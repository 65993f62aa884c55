package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/uniqo-ge/payment-server/internal/application"
	"github.com/uniqo-ge/payment-server/internal/domain"
	"github.com/uniqo-ge/payment-server/internal/interfaces/rest"
)

// HandleCreateOrder forwards an order to the gateway and relays the
// gateway's raw response body to the frontend.
func (h *Handlers) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	result, err := h.payments.CreateOrder(r.Context(), req)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	writeRawJSON(w, http.StatusOK, result.Raw)
}

// HandleOrderStatus relays the gateway's receipt for an order.
func (h *Handlers) HandleOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	result, err := h.payments.GetOrderStatus(r.Context(), orderID)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	writeRawJSON(w, http.StatusOK, result.Raw)
}

// HandleCallback acknowledges an asynchronous payment notification.
func (h *Handlers) HandleCallback(w http.ResponseWriter, r *http.Request) {
	var notification domain.CallbackNotification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	if err := h.payments.HandleCallback(r.Context(), notification); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Callback received successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
