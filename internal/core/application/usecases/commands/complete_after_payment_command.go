package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCompleteAfterPaymentCommandIsNotConstructed = errors.New(
	"CompleteAfterPaymentCommand must be created via NewCompleteAfterPaymentCommand constructor",
)

// CompleteAfterPaymentCommand represents the payment-provider callback for a
// transfer order: the payment cleared, so the order drops back to the
// unresolved default status for the shop to pick up.
type CompleteAfterPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteAfterPaymentCommand creates a payment-reconciliation command.
func NewCompleteAfterPaymentCommand(orderID kernel.UUID) (CompleteAfterPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteAfterPaymentCommand{}, err
	}

	return CompleteAfterPaymentCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteAfterPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAfterPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the paid order.
func (c CompleteAfterPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}
