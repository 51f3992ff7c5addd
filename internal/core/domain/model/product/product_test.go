package product_test

import (
	"testing"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		id := kernel.NewUUID()
		price := decimal.RequireFromString("99.99")

		p, err := product.NewProduct(id, "TONSTAD", "Storage combination", price)

		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
		assert.Equal(t, "TONSTAD", p.Name())
		assert.Equal(t, "Storage combination", p.Description())
		assert.True(t, price.Equal(p.Price()))
		require.NoError(t, p.Validate())
	})

	t.Run("empty description is allowed", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "KALLAX", "", decimal.Zero)

		require.NoError(t, err)
		assert.Empty(t, p.Description())
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", "", decimal.Zero)

		require.ErrorIs(t, err, product.ErrNameIsRequired)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "KALLAX", "", decimal.NewFromInt(-1))

		require.ErrorIs(t, err, product.ErrPriceIsInvalid)
	})

	t.Run("invalid id", func(t *testing.T) {
		var id kernel.UUID

		_, err := product.NewProduct(id, "KALLAX", "", decimal.Zero)

		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}
