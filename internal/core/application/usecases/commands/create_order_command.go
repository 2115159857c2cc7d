package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
// All snapshot inputs (items, shipping address, shop contact) must already be
// valid value objects; the constructor rejects incomplete requests before any
// store write happens.
//
// Example:
//
//	address, err := order.NewAddress("12 Nguyễn Trãi", "P.3", "Q.5", "TP.HCM", "0901234567")
//	if err != nil {
//	    return err // missing street fails here, nothing was written
//	}
//	cmd, err := NewCreateOrderCommand(orderID, customerID, items, address, order.PaymentCash, shop, nil)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	items         []order.Item
	address       order.Address
	paymentMethod order.PaymentMethod
	shop          order.ShopSnapshot
	images        []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Validates identifiers, requires at least one item, and checks the address,
// payment method and shop snapshot.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []order.Item,
	address order.Address,
	paymentMethod order.PaymentMethod,
	shop order.ShopSnapshot,
	images []string,
) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := customerID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, order.ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}
	if err := address.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := shop.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:       orderID,
		customerID:    customerID,
		items:         append([]order.Item(nil), items...),
		address:       address,
		paymentMethod: paymentMethod,
		shop:          shop,
		images:        append([]string(nil), images...),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the line-item snapshots.
func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

// Address returns the shipping-address snapshot.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// PaymentMethod returns how the customer pays.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Shop returns the shop-owner snapshot.
func (c CreateOrderCommand) Shop() order.ShopSnapshot {
	return c.shop
}

// Images returns the order image list.
func (c CreateOrderCommand) Images() []string {
	return append([]string(nil), c.images...)
}
