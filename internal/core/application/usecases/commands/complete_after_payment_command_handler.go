package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CompleteAfterPaymentCommandHandler resets a transfer order to the unresolved
// default status once its payment clears, with the usual mirror patch and
// broadcast.
type CompleteAfterPaymentCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.EventNotifier
	logger     *slog.Logger
}

// NewCompleteAfterPaymentCommandHandler creates a handler for payment callbacks.
func NewCompleteAfterPaymentCommandHandler(
	uowFactory UoWFactory,
	notifier ports.EventNotifier,
	logger *slog.Logger,
) CompleteAfterPaymentCommandHandler {
	return CompleteAfterPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "complete_after_payment"),
	}
}

// Handle processes the payment reconciliation.
// Returns ObjectNotFoundError if no such order exists.
func (h CompleteAfterPaymentCommandHandler) Handle(
	ctx context.Context,
	command CompleteAfterPaymentCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := transitionAndMirror(ctx, uow, command.OrderID(), func(o *order.Order) error {
		return o.ResetAfterPayment()
	})
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	broadcastStatus(ctx, h.notifier, h.logger, ports.EventOrderConfirmed, aggregate)
	return aggregate, nil
}
