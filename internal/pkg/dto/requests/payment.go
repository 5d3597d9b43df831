package requests

type CreatePaymentOrder struct {
	ReferenceID      string `json:"reference_id" validate:"required"`
	Amount           int    `json:"amount" validate:"required,gt=0"`
	Currency         string `json:"currency" validate:"required"`
	CustomerID       string `json:"customer_id,omitempty"`
	ExpiresInMinutes int    `json:"expires_in_minutes,omitempty" validate:"omitempty,gt=0"`
}

type VerifyPayment struct {
	PaymentID string `json:"payment_id" validate:"required"`
	OrderID   string `json:"order_id,omitempty"`
	Signature string `json:"signature,omitempty"`
}

type RefundPayment struct {
	PaymentID string `json:"payment_id" validate:"required"`
	Amount    int    `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Reason    string `json:"reason,omitempty"`
}

// PaymentWebhook is the decoded body of a gateway callback. The signature in
// the request header is verified over the raw payload before this is used.
type PaymentWebhook struct {
	Event                string `json:"event"`
	PaymentID            string `json:"payment_id"`
	OrderID              string `json:"order_id"`
	SessionID            string `json:"session_id"`
	GatewayTransactionID string `json:"gateway_transaction_id"`
	Status               string `json:"status"`
}
