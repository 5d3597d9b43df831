package contracts

import (
	"context"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
)

// AuditSink receives append-only audit events. Implementations must be
// fire-and-forget from the caller's perspective: a failed Record must never
// abort the primary operation (callers log and continue).
type AuditSink interface {
	Record(ctx context.Context, event *models.AuditEvent) error
}
