package queries

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllStoresQueryHandler retrieves store information from the database.
type GetAllStoresQueryHandler struct {
	db *gorm.DB
}

// NewGetAllStoresQueryHandler creates a handler for store retrieval queries.
func NewGetAllStoresQueryHandler(db *gorm.DB) GetAllStoresQueryHandler {
	return GetAllStoresQueryHandler{db: db}
}

// Handle executes the query to retrieve all stores.
// Returns a slice of store read models sorted by name.
func (h GetAllStoresQueryHandler) Handle(
	ctx context.Context,
	query GetAllStoresQuery,
) ([]StoreQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores := make([]StoreQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity_products_in_stock
		FROM stores
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s StoreQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&s.Name,
			&s.QuantityProductsInStock,
		)
		if err != nil {
			return nil, err
		}

		if s.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		stores = append(stores, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}
