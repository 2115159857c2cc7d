package commands

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ClaimOrderByShipperCommandHandler drives the two-phase shipper handshake.
//
// First call on an unclaimed order: the claim is an atomic conditional update
// at the store ("no shipper assigned" guard), so of several concurrent
// claimants exactly one wins and the losers get an InvalidTransitionError.
// Second call by the winning shipper: completes the delivery. Any other
// caller/state combination is rejected.
//
// Both phases patch the owning user's orders and carts mirrors in the same
// transaction as the order write.
type ClaimOrderByShipperCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.EventNotifier
	logger     *slog.Logger
}

// NewClaimOrderByShipperCommandHandler creates a handler for shipper claims.
func NewClaimOrderByShipperCommandHandler(
	uowFactory UoWFactory,
	notifier ports.EventNotifier,
	logger *slog.Logger,
) ClaimOrderByShipperCommandHandler {
	return ClaimOrderByShipperCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "claim_order_by_shipper"),
	}
}

// Handle processes one step of the shipper handshake.
// Returns ObjectNotFoundError if no such order exists and
// InvalidTransitionError when the order is already processed or completed by
// another shipper.
func (h ClaimOrderByShipperCommandHandler) Handle(
	ctx context.Context,
	command ClaimOrderByShipperCommand,
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	switch {
	case aggregate.Shipper() == nil:
		aggregate, err = h.claim(ctx, orderRepo, command)
	case aggregate.Shipper().ID().IsEqual(command.Shipper().ID()) && aggregate.Phase() == order.PhaseProcessing:
		err = aggregate.CompleteDelivery(command.Shipper().ID())
		if err == nil {
			err = orderRepo.Update(ctx, aggregate)
		}
	default:
		return nil, errs.NewInvalidTransitionError("order already processed or completed by another shipper")
	}
	if err != nil {
		return nil, err
	}

	if err = h.patchMirrors(ctx, uow, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	broadcastStatus(ctx, h.notifier, h.logger, ports.EventOrderAccepted, aggregate)
	return aggregate, nil
}

// claim performs the first phase through the store's conditional update and
// reloads the aggregate so callers see the claimed state.
func (h ClaimOrderByShipperCommandHandler) claim(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	command ClaimOrderByShipperCommand,
) (*order.Order, error) {
	if err := orderRepo.ClaimForShipper(ctx, command.OrderID(), command.Shipper()); err != nil {
		return nil, err
	}
	return orderRepo.Get(ctx, command.OrderID())
}

// patchMirrors updates both embedded mirrors of the owning user.
// A user without a mirror entry is tolerated; store failures abort the
// transaction.
func (h ClaimOrderByShipperCommandHandler) patchMirrors(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
) error {
	userRepo := uow.UserRepository()
	owner, err := userRepo.GetByEmbeddedOrderID(ctx, aggregate.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	owner.PatchOrderStatus(aggregate.ID(), aggregate.Status())
	owner.PatchCartPhase(aggregate.ID(), aggregate.Phase())
	return userRepo.Update(ctx, owner)
}
