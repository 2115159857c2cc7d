package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserOrderHistoryQueryHandler reads a customer's orders straight off the
// indexed customer_id column.
type GetUserOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrderHistoryQueryHandler creates a handler for order history queries.
func NewGetUserOrderHistoryQueryHandler(db *gorm.DB) GetUserOrderHistoryQueryHandler {
	return GetUserOrderHistoryQueryHandler{db: db}
}

// Handle executes the history query, newest orders first.
func (h GetUserOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrderHistoryQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			phase,
			total
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, customerID uuid.UUID
		var status, phase int
		var total int64

		if err = rows.Scan(&id, &customerID, &status, &phase, &total); err != nil {
			return nil, err
		}

		summary, convErr := newOrderSummary(id, customerID, status, phase, total)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
