package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles product registration.
// Products carry no cross-entity constraints; creation is a plain insert.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h CreateProductCommandHandler) Handle(ctx context.Context, command CreateProductCommand) error {
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

	aggregate, err := product.NewProduct(
		command.ProductID(),
		command.Name(),
		command.Description(),
		command.Price(),
	)
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
