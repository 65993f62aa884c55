package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/uniqo-ge/payment-server/internal/application"
	"github.com/uniqo-ge/payment-server/internal/domain"
	"github.com/uniqo-ge/payment-server/internal/infrastructure/gateway"
)

// PaymentService composes credential acquisition, order transformation and
// the gateway client into the operations the REST layer exposes.
type PaymentService struct {
	credentials    application.CredentialProvider
	client         application.GatewayClient
	merchant       application.MerchantContext
	callbackSecret []byte
	logger         *slog.Logger
}

func NewPaymentService(
	credentials application.CredentialProvider,
	client application.GatewayClient,
	merchant application.MerchantContext,
	callbackSecret string,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		credentials:    credentials,
		client:         client,
		merchant:       merchant,
		callbackSecret: []byte(callbackSecret),
		logger:         logger,
	}
}

// CreateOrder validates the request, obtains a credential, transforms the
// order and submits it. The first failure propagates unchanged inside a
// ServiceError; the gateway call is never retried.
func (s *PaymentService) CreateOrder(ctx context.Context, req domain.OrderRequest) (*gateway.OrderResult, error) {
	if err := req.Validate(); err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	if !req.SumMatchesItems() {
		s.logger.Debug("order amount does not match item sum",
			"amount", req.Amount,
			"currency", req.Currency,
		)
	}

	cred, err := s.credentials.Credential(ctx)
	if err != nil {
		return nil, application.NewAuthFailedError(err)
	}

	payload := application.ToGatewayOrder(req, s.merchant)

	result, err := s.client.SubmitOrder(ctx, payload, cred)
	if err != nil {
		return nil, application.NewUpstreamFailedError(err)
	}

	s.logger.Info("order created",
		"gateway_order_id", result.ID,
		"external_order_id", payload.ExternalOrderID,
		"amount", payload.PurchaseUnits.TotalAmount,
		"currency", payload.PurchaseUnits.Currency,
	)

	return result, nil
}

// GetOrderStatus fetches the gateway's receipt for an order.
func (s *PaymentService) GetOrderStatus(ctx context.Context, orderID string) (*gateway.StatusResult, error) {
	if orderID == "" {
		return nil, application.NewInvalidInputError(domain.NewValidationError("orderId", "is required"))
	}

	cred, err := s.credentials.Credential(ctx)
	if err != nil {
		return nil, application.NewAuthFailedError(err)
	}

	result, err := s.client.FetchOrderStatus(ctx, orderID, cred)
	if err != nil {
		return nil, application.NewUpstreamFailedError(err)
	}

	return result, nil
}

// HandleCallback acknowledges an asynchronous payment notification. When a
// callback secret is configured the payment_hash is verified as an HMAC over
// order_id + status; without one, any parsed body is accepted.
func (s *PaymentService) HandleCallback(_ context.Context, n domain.CallbackNotification) error {
	if len(s.callbackSecret) > 0 && !s.verifyCallbackHash(n) {
		return application.NewInvalidInputError(
			domain.NewValidationError("payment_hash", "does not match the notification"),
		)
	}

	switch n.Status {
	case domain.CallbackStatusSuccess:
		s.logger.Info("payment succeeded", "order_id", n.OrderID)
	case domain.CallbackStatusFailed:
		s.logger.Warn("payment failed", "order_id", n.OrderID)
	default:
		s.logger.Info("payment callback received",
			"order_id", n.OrderID,
			"status", n.Status,
		)
	}

	return nil
}

func (s *PaymentService) verifyCallbackHash(n domain.CallbackNotification) bool {
	mac := hmac.New(sha256.New, s.callbackSecret)
	mac.Write([]byte(n.OrderID + n.Status))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(n.PaymentHash))
}
