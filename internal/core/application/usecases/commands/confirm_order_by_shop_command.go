package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrConfirmOrderByShopCommandIsNotConstructed = errors.New(
	"ConfirmOrderByShopCommand must be created via NewConfirmOrderByShopCommand constructor",
)

// ConfirmOrderByShopCommand represents a shop accepting an order for
// preparation, which puts the order up for shipper claims.
//
// Example:
//
//	cmd, err := NewConfirmOrderByShopCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewConfirmOrderByShopCommandHandler(uowFactory, notifier, logger)
//	confirmed, err := handler.Handle(ctx, cmd)
type ConfirmOrderByShopCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderByShopCommand creates a command to confirm an order.
// Validates that the order ID is valid.
func NewConfirmOrderByShopCommand(orderID kernel.UUID) (ConfirmOrderByShopCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmOrderByShopCommand{}, err
	}

	return ConfirmOrderByShopCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderByShopCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderByShopCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c ConfirmOrderByShopCommand) OrderID() kernel.UUID {
	return c.orderID
}
