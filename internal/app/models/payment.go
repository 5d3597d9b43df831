package models

import (
	"time"

	"github.com/goccy/go-json"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentRecord lives in the session store while the payment is in flight.
// Once refunded it is immutable.
type PaymentRecord struct {
	PaymentID       string          `json:"payment_id"`
	OrderID         string          `json:"order_id"`
	SessionID       string          `json:"session_id"`
	PatientID       string          `json:"patient_id"`
	Amount          int             `json:"amount"`
	Currency        string          `json:"currency"`
	Status          PaymentStatus   `json:"status"`
	GatewayResponse json.RawMessage `json:"gateway_response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	ExpiresAt       time.Time       `json:"expires_at"`
}

func (p *PaymentRecord) IsExpired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
