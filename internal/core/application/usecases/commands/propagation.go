package commands

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// OrderStatusPayload is the wire payload broadcast after a status transition.
type OrderStatusPayload struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// transitionAndMirror is the one primitive behind every status-propagating
// command: load the order, apply the domain transition, persist it, and patch
// the owning user's embedded mirror — all inside the caller's transaction.
//
// The mirror patch tolerates a user without a mirror entry (the entry may
// legitimately be gone, e.g. after an administrative order delete) but any
// store failure aborts the transaction so order and mirror commit together
// or not at all.
func transitionAndMirror(
	ctx context.Context,
	uow UoW,
	orderID kernel.UUID,
	transition func(*order.Order) error,
) (*order.Order, error) {
	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = transition(aggregate); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	userRepo := uow.UserRepository()
	owner, err := userRepo.GetByEmbeddedOrderID(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return aggregate, nil
	}
	if err != nil {
		return nil, err
	}

	owner.PatchOrderStatus(aggregate.ID(), aggregate.Status())
	if err = userRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// broadcastStatus announces a committed transition to all connected sessions.
// Fire and forget: a nil or failing notifier is logged and never surfaces to
// the caller, per the rule that broadcast must not fail a state transition.
func broadcastStatus(
	ctx context.Context,
	notifier ports.EventNotifier,
	logger *slog.Logger,
	eventName string,
	aggregate *order.Order,
) {
	if notifier == nil {
		logger.WarnContext(ctx, "No live event channel, skipping broadcast",
			"event", eventName, "orderId", aggregate.ID().String())
		return
	}

	payload := OrderStatusPayload{
		OrderID: aggregate.ID().String(),
		Status:  aggregate.Status().String(),
	}
	if err := notifier.Broadcast(eventName, payload); err != nil {
		logger.WarnContext(ctx, "Broadcast failed, transition already committed",
			"event", eventName, "orderId", payload.OrderID, "error", err)
	}
}
