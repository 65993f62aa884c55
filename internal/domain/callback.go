package domain

// CallbackNotification is the gateway's asynchronous payment-outcome
// message. It is acknowledged and logged, never stored.
type CallbackNotification struct {
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	PaymentHash string `json:"payment_hash"`
}

const (
	CallbackStatusSuccess = "success"
	CallbackStatusFailed  = "failed"
)
