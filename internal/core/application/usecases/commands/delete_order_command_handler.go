package commands

import (
	"context"
	"log/slog"
)

// DeleteOrderCommandHandler removes the order row only. The user's embedded
// mirror entry is intentionally left in place: purging it is pending product
// sign-off, so the dangling entry matches the long-standing behavior.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for administrative deletes.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete_order"),
	}
}

// Handle processes the delete.
// Returns ObjectNotFoundError if no such order exists; nothing is mutated in
// that case.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, command.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order deleted, mirror entry left dangling",
		"orderId", command.OrderID().String())
	return nil
}
