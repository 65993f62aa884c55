package application

import (
	"context"

	"github.com/uniqo-ge/payment-server/internal/domain"
	"github.com/uniqo-ge/payment-server/internal/infrastructure/gateway"
)

// CredentialProvider is the port for obtaining gateway credentials.
type CredentialProvider interface {
	Credential(ctx context.Context) (domain.Credential, error)
}

// GatewayClient is the port for the external checkout gateway.
type GatewayClient interface {
	SubmitOrder(ctx context.Context, payload gateway.OrderPayload, cred domain.Credential) (*gateway.OrderResult, error)
	FetchOrderStatus(ctx context.Context, orderID string, cred domain.Credential) (*gateway.StatusResult, error)
}
