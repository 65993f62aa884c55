package domain

import "fmt"

// OrderRequest is the storefront's view of an order, before it is reshaped
// into the gateway's checkout schema.
type OrderRequest struct {
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency"`
	Intent   string     `json:"intent"`
	Items    []LineItem `json:"items"`
}

type LineItem struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	ProductID   string  `json:"product_id"`
}

// Validate checks the fields the gateway requires. Amount/item-sum equality
// is intentionally not enforced; see SumMatchesItems.
func (r OrderRequest) Validate() error {
	if r.Amount <= 0 {
		return NewValidationError("amount", "must be greater than zero")
	}
	if r.Currency == "" {
		return NewValidationError("currency", "is required")
	}
	if len(r.Items) == 0 {
		return NewValidationError("items", "must not be empty")
	}
	for i, item := range r.Items {
		if item.Amount <= 0 {
			return NewValidationError(fmt.Sprintf("items[%d].amount", i), "must be greater than zero")
		}
		if item.Quantity <= 0 {
			return NewValidationError(fmt.Sprintf("items[%d].quantity", i), "must be a positive integer")
		}
		if item.ProductID == "" {
			return NewValidationError(fmt.Sprintf("items[%d].product_id", i), "is required")
		}
	}
	return nil
}

// SumMatchesItems reports whether the order total equals the sum of
// item amounts weighted by quantity. Callers log a mismatch but do not
// reject the order.
func (r OrderRequest) SumMatchesItems() bool {
	var sum float64
	for _, item := range r.Items {
		sum += item.Amount * float64(item.Quantity)
	}
	diff := r.Amount - sum
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.005
}
