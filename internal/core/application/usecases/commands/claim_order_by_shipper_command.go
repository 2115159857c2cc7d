package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrClaimOrderByShipperCommandIsNotConstructed = errors.New(
	"ClaimOrderByShipperCommand must be created via NewClaimOrderByShipperCommand constructor",
)

// ClaimOrderByShipperCommand represents one step of the two-phase shipper
// handshake. The same command sent twice by the same shipper first claims the
// order (processing) and then completes it (completed); which phase applies is
// decided by the handler from the order's current state.
//
// Example:
//
//	shipper, _ := order.NewShipperSnapshot(shipperID, "Minh", "0901234567")
//	cmd, err := NewClaimOrderByShipperCommand(orderID, shipper)
//	if err != nil {
//	    return err
//	}
//	handler := NewClaimOrderByShipperCommandHandler(uowFactory, notifier, logger)
//	claimed, err := handler.Handle(ctx, cmd)
type ClaimOrderByShipperCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	shipper order.ShipperSnapshot

	guard guard.ConstructorGuard
}

// NewClaimOrderByShipperCommand creates a claim command.
// Validates the order ID and the shipper snapshot.
func NewClaimOrderByShipperCommand(
	orderID kernel.UUID,
	shipper order.ShipperSnapshot,
) (ClaimOrderByShipperCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ClaimOrderByShipperCommand{}, err
	}
	if err := shipper.Validate(); err != nil {
		return ClaimOrderByShipperCommand{}, err
	}

	return ClaimOrderByShipperCommand{
		orderID: orderID,
		shipper: shipper,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderByShipperCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderByShipperCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c ClaimOrderByShipperCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Shipper returns the claiming shipper's snapshot.
func (c ClaimOrderByShipperCommand) Shipper() order.ShipperSnapshot {
	return c.shipper
}
