package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetUserOrderHistoryQueryIsNotConstructed = errors.New(
		"GetUserOrderHistoryQuery must be created via NewGetUserOrderHistoryQuery constructor",
	)
)

// GetUserOrderHistoryQuery retrieves a customer's orders by the indexed
// customer foreign key on the orders table. This is the join-free read path
// that does not depend on the embedded mirror, so history stays correct even
// where the mirror has a dangling or missing entry.
//
// Example:
//
//	query, err := NewGetUserOrderHistoryQuery(customerID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetUserOrderHistoryQueryHandler(db)
//	history, err := handler.Handle(ctx, query)
type GetUserOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserOrderHistoryQuery creates a query for one customer's order history.
func NewGetUserOrderHistoryQuery(customerID kernel.UUID) (GetUserOrderHistoryQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetUserOrderHistoryQuery{}, err
	}

	return GetUserOrderHistoryQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrderHistoryQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is requested.
func (q GetUserOrderHistoryQuery) CustomerID() kernel.UUID {
	return q.customerID
}
