package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full view of a single order, snapshots included.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//	details, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemView is one line item in the order detail read model.
type OrderItemView struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
}

// OrderDetailsResponse is the full read model of an order. Status and phase
// carry their wire labels, not enum values, because this view feeds clients
// directly.
type OrderDetailsResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	Status        string
	Phase         string
	PaymentMethod string
	CreatedAt     time.Time
	Street        string
	Ward          string
	District      string
	City          string
	Phone         string
	ShopName      string
	ShopPhone     string
	ShipperName   string
	ShipperPhone  string
	Items         []OrderItemView
	Total         int64
}

// statusLabel converts a stored status value to its wire label.
func statusLabel(status int) string {
	return order.Status(status).String()
}

// phaseLabel converts a stored phase value to its wire label.
func phaseLabel(phase int) string {
	return order.DeliveryPhase(phase).String()
}
