// Package product implements the Product entity.
// Products are plain catalog records with no cross-entity constraints of
// their own; they participate in fulfillment assignments by reference only.
package product

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPriceIsInvalid is returned when the price is negative.
	ErrPriceIsInvalid = errs.NewValueIsInvalidError("price")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product represents a catalog item that can be fulfilled from warehouses.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewProduct creates a product with the given identity and attributes.
// The name is required; the description is optional; the price must not be negative.
func NewProduct(id kernel.UUID, name string, description string, price decimal.Decimal) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if price.IsNegative() {
		return nil, ErrPriceIsInvalid
	}

	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct reconstructs a product from persisted state.
func RestoreProduct(id kernel.UUID, name string, description string, price decimal.Decimal) (*Product, error) {
	return NewProduct(id, name, description, price)
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the product price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}
