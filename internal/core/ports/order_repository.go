package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate with an
	// optimistic version check: the write is rejected with a
	// ConcurrentModificationError if the stored version moved since the
	// aggregate was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order row. The user mirror is deliberately not
	// touched by this path. Returns ObjectNotFoundError if the order is absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// ClaimForShipper atomically assigns the shipper to an unclaimed order:
	// a conditional update on "no shipper assigned" so that exactly one of
	// several concurrent claimants wins. The loser receives an
	// InvalidTransitionError; an absent order an ObjectNotFoundError.
	ClaimForShipper(ctx context.Context, id kernel.UUID, shipper order.ShipperSnapshot) error

	// GetAllActive retrieves all orders whose status is not terminal.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
