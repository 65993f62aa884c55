package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniqo-ge/payment-server/internal/application"
	"github.com/uniqo-ge/payment-server/internal/domain"
)

func merchantContext(now time.Time) application.MerchantContext {
	return application.MerchantContext{
		MerchantID:  "merchant-1",
		CallbackURL: "https://pay.uniqo.ge/api/payments/callback",
		FrontendURL: "https://uniqo.ge",
		Now:         func() time.Time { return now },
	}
}

func TestToGatewayOrder_FormatsAmountsWithTwoDecimals(t *testing.T) {
	req := domain.OrderRequest{
		Amount:   10.5,
		Currency: "GEL",
		Intent:   "CAPTURE",
		Items: []domain.LineItem{
			{Amount: 10.5, Description: "Widget", Quantity: 1, ProductID: "p1"},
		},
	}

	payload := application.ToGatewayOrder(req, merchantContext(time.Now()))

	assert.Equal(t, "10.50", payload.PurchaseUnits.TotalAmount)
	require.Len(t, payload.PurchaseUnits.Basket, 1)
	assert.Equal(t, "10.50", payload.PurchaseUnits.Basket[0].UnitPrice)
}

func TestToGatewayOrder_PreservesItemCount(t *testing.T) {
	req := domain.OrderRequest{
		Amount:   30,
		Currency: "GEL",
		Items: []domain.LineItem{
			{Amount: 10, Description: "A", Quantity: 1, ProductID: "p1"},
			{Amount: 15, Description: "B", Quantity: 1, ProductID: "p2"},
			{Amount: 5, Description: "C", Quantity: 1, ProductID: "p3"},
		},
	}

	payload := application.ToGatewayOrder(req, merchantContext(time.Now()))

	require.Len(t, payload.PurchaseUnits.Basket, len(req.Items))
	assert.Equal(t, "p1", payload.PurchaseUnits.Basket[0].ProductID)
	assert.Equal(t, "p2", payload.PurchaseUnits.Basket[1].ProductID)
	assert.Equal(t, "p3", payload.PurchaseUnits.Basket[2].ProductID)
}

func TestToGatewayOrder_InjectsMerchantContext(t *testing.T) {
	req := domain.OrderRequest{
		Amount:   12,
		Currency: "GEL",
		Items: []domain.LineItem{
			{Amount: 12, Description: "A", Quantity: 1, ProductID: "p1"},
		},
	}

	payload := application.ToGatewayOrder(req, merchantContext(time.Now()))

	assert.Equal(t, "merchant-1", payload.MerchantID)
	assert.Equal(t, "https://pay.uniqo.ge/api/payments/callback", payload.CallbackURL)
	assert.Equal(t, "https://uniqo.ge/payment/status", payload.RedirectURLs.Success)
	assert.Equal(t, "https://uniqo.ge/payment/status", payload.RedirectURLs.Fail)
	assert.Equal(t, "ka", payload.Locale)
	assert.Equal(t, "automatic", payload.Capture)
}

func TestToGatewayOrder_ManualCaptureForAuthorizeIntent(t *testing.T) {
	req := domain.OrderRequest{
		Amount:   12,
		Currency: "GEL",
		Intent:   "AUTHORIZE",
		Items: []domain.LineItem{
			{Amount: 12, Description: "A", Quantity: 1, ProductID: "p1"},
		},
	}

	payload := application.ToGatewayOrder(req, merchantContext(time.Now()))

	assert.Equal(t, "manual", payload.Capture)
}

func TestToGatewayOrder_IdempotentForFixedClock(t *testing.T) {
	req := domain.OrderRequest{
		Amount:   25.75,
		Currency: "GEL",
		Items: []domain.LineItem{
			{Amount: 25.75, Description: "A", Quantity: 1, ProductID: "p1"},
		},
	}

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	first := application.ToGatewayOrder(req, merchantContext(now))
	second := application.ToGatewayOrder(req, merchantContext(now))

	assert.Equal(t, first, second)
}

func TestToGatewayOrder_ExternalOrderIDDerivedFromClock(t *testing.T) {
	req := domain.OrderRequest{
		Amount:   5,
		Currency: "GEL",
		Items: []domain.LineItem{
			{Amount: 5, Description: "A", Quantity: 1, ProductID: "p1"},
		},
	}

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Millisecond)

	first := application.ToGatewayOrder(req, merchantContext(now))
	second := application.ToGatewayOrder(req, merchantContext(later))

	assert.NotEmpty(t, first.ExternalOrderID)
	assert.NotEqual(t, first.ExternalOrderID, second.ExternalOrderID)
}
