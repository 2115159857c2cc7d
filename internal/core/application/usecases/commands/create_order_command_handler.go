package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places a new order and seeds the owning user's
// embedded mirror with its initial status, in one transaction. Creation does
// not broadcast; the first announced transition is the shop's decision.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle processes the order placement.
// The initial status comes from the payment method: cash orders start
// "Chưa giải quyết", transfer orders "Chờ thanh toán". Returns
// ObjectNotFoundError if the customer does not exist.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	command CreateOrderCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		command.Items(),
		command.Address(),
		command.PaymentMethod(),
		command.Shop(),
		command.Images(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	owner, err := userRepo.Get(ctx, command.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = owner.AddOrderMirror(aggregate.ID(), aggregate.Status()); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
