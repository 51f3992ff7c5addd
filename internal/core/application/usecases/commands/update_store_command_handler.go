package commands

import (
	"context"
	"log/slog"

	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/ports"
)

// UpdateStoreCommandHandler handles store updates. After the transaction
// commits, an UPDATED event is propagated to the legacy store manager the
// same best-effort way as on creation.
type UpdateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
	publisher  ports.StoreEventPublisher
	logger     *slog.Logger
}

// NewUpdateStoreCommandHandler creates a handler for store updates.
func NewUpdateStoreCommandHandler(uowFactory StoreUoWFactory, publisher ports.StoreEventPublisher) UpdateStoreCommandHandler {
	return UpdateStoreCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     slog.With("component", "store-commands"),
	}
}

// Handle processes the store update command.
// Returns ObjectNotFoundError when no store carries the identifier.
func (h UpdateStoreCommandHandler) Handle(ctx context.Context, command UpdateStoreCommand) error {
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

	storeRepo := uow.StoreRepository()

	aggregate, err := storeRepo.Get(ctx, command.StoreID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(command.Name(), command.QuantityProductsInStock()); err != nil {
		return err
	}

	if err = storeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, store.NewEvent(aggregate, store.EventUpdated)); err != nil {
		h.logger.WarnContext(ctx, "failed to publish store event",
			"storeId", aggregate.ID().String(),
			"eventType", string(store.EventUpdated),
			"error", err)
	}

	return nil
}
