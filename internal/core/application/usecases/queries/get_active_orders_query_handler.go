package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out terminal statuses to provide active workload visibility.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	query := NewGetActiveOrdersQuery()
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal orders.
// Results are sorted by order ID for consistent output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
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
		WHERE status NOT IN (?, ?, ?, ?)
		ORDER BY id
	`, order.CustomerCancelled, order.ShopCancelled, order.ShipperCancelled, order.Delivered).Rows()
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

// newOrderSummary converts raw row values into the read model.
func newOrderSummary(id, customerID uuid.UUID, status, phase int, total int64) (OrderSummaryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	return OrderSummaryResponse{
		ID:         orderID,
		CustomerID: ownerID,
		Status:     order.Status(status),
		Phase:      order.DeliveryPhase(phase),
		Total:      total,
	}, nil
}
