package handlers

import (
	"context"
	"log/slog"

	"github.com/uniqo-ge/payment-server/internal/domain"
	"github.com/uniqo-ge/payment-server/internal/infrastructure/gateway"
)

// PaymentService is what the handlers need from the application layer.
type PaymentService interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*gateway.OrderResult, error)
	GetOrderStatus(ctx context.Context, orderID string) (*gateway.StatusResult, error)
	HandleCallback(ctx context.Context, n domain.CallbackNotification) error
}

type Handlers struct {
	payments PaymentService
	logger   *slog.Logger
}

func NewHandlers(payments PaymentService, logger *slog.Logger) *Handlers {
	return &Handlers{
		payments: payments,
		logger:   logger,
	}
}
