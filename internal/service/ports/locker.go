package ports

import (
	"context"
)

// Locker serialises requests sharing a key across service instances.
// Lock returns domain.ErrConcurrentUpdateConflict when the key is already held.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
