package contracts

import (
	"context"
	"time"
)

// LockerService is the only mutual-exclusion primitive in the system. It is
// an advisory lock backed by set-if-absent with TTL.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
}
