package gateway

import "encoding/json"

// OrderPayload is the checkout schema the gateway accepts. Built fresh per
// request by the order transformer and discarded after the call.
type OrderPayload struct {
	MerchantID      string        `json:"merchantId"`
	ExternalOrderID string        `json:"external_order_id"`
	PurchaseUnits   PurchaseUnits `json:"purchase_units"`
	CallbackURL     string        `json:"callback_url"`
	RedirectURLs    RedirectURLs  `json:"redirect_urls"`
	Capture         string        `json:"capture"`
	Locale          string        `json:"locale"`
}

type PurchaseUnits struct {
	Currency    string       `json:"currency"`
	TotalAmount string       `json:"total_amount"`
	Basket      []BasketItem `json:"basket"`
}

type BasketItem struct {
	ProductID   string `json:"product_id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

type RedirectURLs struct {
	Success string `json:"success"`
	Fail    string `json:"fail"`
}

// OrderResult is the gateway's order-creation response. Raw holds the
// unmodified body so the HTTP layer can pass it through to the frontend.
type OrderResult struct {
	ID  string          `json:"id"`
	Raw json.RawMessage `json:"-"`
}

// StatusResult is the gateway's receipt response for an order.
type StatusResult struct {
	OrderID string          `json:"order_id"`
	Status  string          `json:"order_status"`
	Raw     json.RawMessage `json:"-"`
}
