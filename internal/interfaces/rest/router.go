package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/uniqo-ge/payment-server/internal/config"
)

// PaymentHandlers is the set of endpoint handlers the router wires up.
type PaymentHandlers interface {
	HandleCreateOrder(w http.ResponseWriter, r *http.Request)
	HandleOrderStatus(w http.ResponseWriter, r *http.Request)
	HandleCallback(w http.ResponseWriter, r *http.Request)
	HandleRoot(w http.ResponseWriter, r *http.Request)
	HandleHealth(w http.ResponseWriter, r *http.Request)
}

// Middleware is a standard net/http decorator.
type Middleware func(http.Handler) http.Handler

// NewRouter assembles the HTTP surface: CORS for the storefront origins,
// the shared middleware chain and the payment routes.
func NewRouter(h PaymentHandlers, cfg config.CORSConfig, mws ...Middleware) http.Handler {
	r := chi.NewRouter()

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	for _, mw := range mws {
		r.Use(mw)
	}

	r.Get("/", h.HandleRoot)
	r.Get("/health", h.HandleHealth)

	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/create-order", h.HandleCreateOrder)
		r.Get("/order-status/{orderId}", h.HandleOrderStatus)
		r.Post("/callback", h.HandleCallback)
	})

	return r
}
