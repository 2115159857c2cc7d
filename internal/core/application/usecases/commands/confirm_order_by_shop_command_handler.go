package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// ConfirmOrderByShopCommandHandler moves an order to seeking-shipper after the
// shop accepts it, patches the owning user's mirror in the same transaction,
// and broadcasts the change to connected sessions.
type ConfirmOrderByShopCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.EventNotifier
	logger     *slog.Logger
}

// NewConfirmOrderByShopCommandHandler creates a handler for shop confirmations.
// The notifier may be nil when no live event channel exists; broadcasts are
// then skipped with a log line.
func NewConfirmOrderByShopCommandHandler(
	uowFactory UoWFactory,
	notifier ports.EventNotifier,
	logger *slog.Logger,
) ConfirmOrderByShopCommandHandler {
	return ConfirmOrderByShopCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "confirm_order_by_shop"),
	}
}

// Handle processes the shop confirmation.
// Returns ObjectNotFoundError if no such order exists. On success the order is
// in "Tìm người giao hàng" and the user's mirrored entry matches.
func (h ConfirmOrderByShopCommandHandler) Handle(
	ctx context.Context,
	command ConfirmOrderByShopCommand,
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
		return o.ConfirmByShop()
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
