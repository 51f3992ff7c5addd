package commands

import (
	"context"
	"log/slog"

	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/ports"
)

// CreateStoreCommandHandler handles store registration. After the transaction
// commits, a CREATED event is propagated to the legacy store manager.
// Propagation is best-effort: a publish failure is logged and never affects
// the command result.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
	publisher  ports.StoreEventPublisher
	logger     *slog.Logger
}

// NewCreateStoreCommandHandler creates a handler for store registration.
func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory, publisher ports.StoreEventPublisher) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     slog.With("component", "store-commands"),
	}
}

// Handle processes the store creation command.
func (h CreateStoreCommandHandler) Handle(ctx context.Context, command CreateStoreCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := store.NewStore(
		command.StoreID(),
		command.Name(),
		command.QuantityProductsInStock(),
	)
	if err != nil {
		return err
	}

	if err = uow.StoreRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, store.NewEvent(aggregate, store.EventCreated)); err != nil {
		h.logger.WarnContext(ctx, "failed to publish store event",
			"storeId", aggregate.ID().String(),
			"eventType", string(store.EventCreated),
			"error", err)
	}

	return nil
}
