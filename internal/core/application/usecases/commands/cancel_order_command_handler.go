package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler applies a cancellation by customer, shop or
// shipper: terminal status overwrite, mirror patch in the same transaction,
// then an order_cancelled broadcast.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.EventNotifier
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.EventNotifier,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "cancel_order"),
	}
}

// Handle processes the cancellation.
// Returns ObjectNotFoundError if no such order exists. Cancelling an already
// cancelled order lands on the same terminal status and is not an error.
func (h CancelOrderCommandHandler) Handle(
	ctx context.Context,
	command CancelOrderCommand,
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

	aggregate, err := transitionAndMirror(ctx, uow, command.OrderID(), command.apply)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	broadcastStatus(ctx, h.notifier, h.logger, ports.EventOrderCancelled, aggregate)
	return aggregate, nil
}
