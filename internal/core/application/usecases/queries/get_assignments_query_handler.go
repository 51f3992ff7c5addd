package queries

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentsQueryHandler retrieves fulfillment assignments from the
// database, applying the query's optional filters.
type GetAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentsQueryHandler creates a handler for assignment retrieval queries.
func NewGetAssignmentsQueryHandler(db *gorm.DB) GetAssignmentsQueryHandler {
	return GetAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve assignments.
// Returns a slice of assignment read models sorted by creation time.
func (h GetAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentsQuery,
) ([]AssignmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			product_id,
			warehouse_business_unit_code,
			store_id,
			created_at
		FROM assignments
		WHERE TRUE
	`
	args := make([]any, 0, 3)

	if storeID := query.StoreID(); storeID != nil {
		sql += " AND store_id = ?"
		args = append(args, storeID.String())
	}
	if code := query.WarehouseBUCode(); code != "" {
		sql += " AND warehouse_business_unit_code = ?"
		args = append(args, code)
	}
	if productID := query.ProductID(); productID != nil {
		sql += " AND product_id = ?"
		args = append(args, productID.String())
	}

	sql += " ORDER BY created_at"

	assignments := make([]AssignmentQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var assignment AssignmentQueryResponse
		var id, productID, storeID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&assignment.WarehouseBUCode,
			&storeID,
			&assignment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if assignment.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if assignment.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if assignment.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
			return nil, err
		}

		assignments = append(assignments, assignment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
