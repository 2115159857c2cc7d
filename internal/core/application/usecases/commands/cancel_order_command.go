package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via one of its NewCancelOrderBy... constructors",
)

// CancelActor identifies who is cancelling an order. Each actor maps to its
// own terminal status label.
type CancelActor int

const (
	// CancelActorUnknown represents an invalid or undefined actor.
	CancelActorUnknown CancelActor = iota

	// CancelActorCustomer is the ordering customer.
	CancelActorCustomer

	// CancelActorShop is the shop owner.
	CancelActorShop

	// CancelActorShipper is the delivering shipper.
	CancelActorShipper
)

// Validate checks if the CancelActor value is valid.
func (a CancelActor) Validate() error {
	switch a {
	case CancelActorCustomer, CancelActorShop, CancelActorShipper:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"cancel actor is invalid",
			fmt.Errorf("%d is not a valid cancel actor", a),
		)
	}
}

// CancelOrderCommand represents a cancellation request by a specific actor.
// Cancellations overwrite the status unconditionally, whatever the current
// state, so repeating one is harmless.
//
// Example:
//
//	cmd, err := NewCancelOrderByCustomerCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewCancelOrderCommandHandler(uowFactory, notifier, logger)
//	cancelled, err := handler.Handle(ctx, cmd)
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   CancelActor

	guard guard.ConstructorGuard
}

// NewCancelOrderByCustomerCommand creates a customer cancellation command.
func NewCancelOrderByCustomerCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	return newCancelOrderCommand(orderID, CancelActorCustomer)
}

// NewCancelOrderByShopCommand creates a shop cancellation command.
func NewCancelOrderByShopCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	return newCancelOrderCommand(orderID, CancelActorShop)
}

// NewCancelOrderByShipperCommand creates a shipper cancellation command.
func NewCancelOrderByShipperCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	return newCancelOrderCommand(orderID, CancelActorShipper)
}

func newCancelOrderCommand(orderID kernel.UUID, actor CancelActor) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns who requested the cancellation.
func (c CancelOrderCommand) Actor() CancelActor {
	return c.actor
}

// apply performs the actor's cancellation on the aggregate.
func (c CancelOrderCommand) apply(o *order.Order) error {
	switch c.actor {
	case CancelActorCustomer:
		return o.CancelByCustomer()
	case CancelActorShop:
		return o.CancelByShop()
	case CancelActorShipper:
		return o.CancelByShipper()
	default:
		return c.actor.Validate()
	}
}
