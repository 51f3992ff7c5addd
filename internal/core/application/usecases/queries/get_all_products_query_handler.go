package queries

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllProductsQueryHandler retrieves product information from the database.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for product retrieval queries.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all products.
// Returns a slice of product read models sorted by name.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]ProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p ProductQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&p.Name,
			&p.Description,
			&p.Price,
		)
		if err != nil {
			return nil, err
		}

		if p.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
