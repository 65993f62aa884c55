package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/uniqo-ge/payment-server/internal/domain"
	"github.com/uniqo-ge/payment-server/internal/infrastructure/gateway"
)

// The gateway supports a single checkout locale.
const checkoutLocale = "ka"

// MerchantContext carries the configured merchant identity and URLs the
// transformer injects into every payload.
type MerchantContext struct {
	MerchantID  string
	CallbackURL string
	FrontendURL string

	// Now is the clock used for external order ids. Defaults to time.Now.
	Now func() time.Time
}

// ToGatewayOrder reshapes an order into the gateway's checkout schema.
// Pure aside from the clock read for the external order id; assumes the
// request already passed domain.OrderRequest.Validate.
func ToGatewayOrder(req domain.OrderRequest, mctx MerchantContext) gateway.OrderPayload {
	now := time.Now
	if mctx.Now != nil {
		now = mctx.Now
	}

	basket := make([]gateway.BasketItem, 0, len(req.Items))
	for _, item := range req.Items {
		basket = append(basket, gateway.BasketItem{
			ProductID:   item.ProductID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   formatAmount(item.Amount),
		})
	}

	capture := "automatic"
	if strings.EqualFold(req.Intent, "authorize") {
		capture = "manual"
	}

	statusURL := fmt.Sprintf("%s/payment/status", mctx.FrontendURL)

	return gateway.OrderPayload{
		MerchantID:      mctx.MerchantID,
		ExternalOrderID: fmt.Sprintf("order-%d", now().UnixNano()),
		PurchaseUnits: gateway.PurchaseUnits{
			Currency:    req.Currency,
			TotalAmount: formatAmount(req.Amount),
			Basket:      basket,
		},
		CallbackURL: mctx.CallbackURL,
		RedirectURLs: gateway.RedirectURLs{
			Success: statusURL,
			Fail:    statusURL,
		},
		Capture: capture,
		Locale:  checkoutLocale,
	}
}

// formatAmount renders a decimal amount with exactly two fraction digits.
func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
