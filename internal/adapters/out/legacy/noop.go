package legacy

import (
	"context"
	"log/slog"

	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/ports"
)

// NoopStoreEventPublisher discards store change events. Used when no Kafka
// host is configured, e.g. in local development.
type NoopStoreEventPublisher struct {
	logger *slog.Logger
}

// NewNoopStoreEventPublisher creates a publisher that drops every event.
func NewNoopStoreEventPublisher() *NoopStoreEventPublisher {
	return &NoopStoreEventPublisher{
		logger: slog.With("component", "store-event-publisher"),
	}
}

// Publish logs the event and discards it.
func (p *NoopStoreEventPublisher) Publish(_ context.Context, event store.Event) error {
	p.logger.Debug("store event discarded, publishing is disabled",
		"storeId", event.Store().ID().String(),
		"eventType", string(event.Type()),
	)
	return nil
}

var _ ports.StoreEventPublisher = (*NoopStoreEventPublisher)(nil)
