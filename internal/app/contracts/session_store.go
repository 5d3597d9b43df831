package contracts

import (
	"context"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
)

// SessionStore holds the ephemeral pre-payment state: consultation drafts and
// payment records, both TTL-bound. Get methods return (nil, nil) when the key
// is absent or already expired.
type SessionStore interface {
	SaveDraft(ctx context.Context, draft *models.ConsultationDraft, ttl time.Duration) error
	GetDraft(ctx context.Context, sessionID string) (*models.ConsultationDraft, error)
	GetDraftByPatientID(ctx context.Context, patientID string) (*models.ConsultationDraft, error)
	DeleteDraft(ctx context.Context, sessionID string) error

	SavePaymentRecord(ctx context.Context, record *models.PaymentRecord, ttl time.Duration) error
	GetPaymentRecord(ctx context.Context, paymentID string) (*models.PaymentRecord, error)
	DeletePaymentRecord(ctx context.Context, paymentID string) error
}
