package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/store"
)

// StoreEventPublisher propagates committed store changes to the legacy store
// manager. Delivery is fire-and-forget: at-most-once, best-effort, invoked
// only after the owning transaction has committed. A returned error is for
// the caller to log; it must never affect the outcome of the operation that
// produced the event.
type StoreEventPublisher interface {
	Publish(ctx context.Context, event store.Event) error
}
