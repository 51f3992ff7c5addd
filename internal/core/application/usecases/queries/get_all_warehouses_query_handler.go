package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllWarehousesQueryHandler retrieves active warehouse information from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetAllWarehousesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllWarehousesQueryHandler creates a handler for warehouse retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllWarehousesQueryHandler(db *gorm.DB) GetAllWarehousesQueryHandler {
	return GetAllWarehousesQueryHandler{db: db}
}

// Handle executes the query to retrieve all active warehouses.
// Returns a slice of warehouse read models sorted by business-unit code.
func (h GetAllWarehousesQueryHandler) Handle(
	ctx context.Context,
	query GetAllWarehousesQuery,
) ([]WarehouseQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]WarehouseQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			business_unit_code,
			location,
			capacity,
			stock,
			created_at
		FROM warehouses
		WHERE archived_at IS NULL
		ORDER BY business_unit_code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var w WarehouseQueryResponse

		err = rows.Scan(
			&w.BusinessUnitCode,
			&w.Location,
			&w.Capacity,
			&w.Stock,
			&w.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		warehouses = append(warehouses, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}
