package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWarehouseByCodeQueryHandler retrieves a single active warehouse by its
// business-unit code.
type GetWarehouseByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehouseByCodeQueryHandler creates a handler for single-warehouse queries.
func NewGetWarehouseByCodeQueryHandler(db *gorm.DB) GetWarehouseByCodeQueryHandler {
	return GetWarehouseByCodeQueryHandler{db: db}
}

// Handle executes the query.
// Returns ObjectNotFoundError when no active warehouse carries the code.
func (h GetWarehouseByCodeQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseByCodeQuery,
) (WarehouseQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return WarehouseQueryResponse{}, err
	}

	var w WarehouseQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			business_unit_code,
			location,
			capacity,
			stock,
			created_at
		FROM warehouses
		WHERE business_unit_code = ? AND archived_at IS NULL
	`, query.BusinessUnitCode()).Row()

	err := row.Scan(
		&w.BusinessUnitCode,
		&w.Location,
		&w.Capacity,
		&w.Stock,
		&w.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return WarehouseQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"businessUnitCode", query.BusinessUnitCode(), err)
	}
	if err != nil {
		return WarehouseQueryResponse{}, err
	}

	return w, nil
}
