package responses

import (
	"time"

	"github.com/goccy/go-json"
)

type PaymentOrder struct {
	OrderID    string    `json:"order_id"`
	PaymentID  string    `json:"payment_id"`
	Amount     int       `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	PaymentURL string    `json:"payment_url,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type PaymentVerification struct {
	PaymentID            string          `json:"payment_id"`
	OrderID              string          `json:"order_id"`
	GatewayTransactionID string          `json:"gateway_transaction_id,omitempty"`
	Status               string          `json:"status"`
	Verified             bool            `json:"verified"`
	Amount               int             `json:"amount"`
	Currency             string          `json:"currency"`
	Raw                  json.RawMessage `json:"raw,omitempty"`
}

type PaymentRefund struct {
	RefundID  string `json:"refund_id"`
	PaymentID string `json:"payment_id"`
	Amount    int    `json:"amount"`
	Status    string `json:"status"`
}

type PaymentDetails struct {
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Amount    int       `json:"amount"`
	Currency  string    `json:"currency"`
	Method    string    `json:"method,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
