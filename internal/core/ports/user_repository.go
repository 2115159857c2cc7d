package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates,
// including the embedded order mirrors.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate,
	// including its mirror arrays.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmbeddedOrderID retrieves the user whose orders mirror contains an
	// entry for the given order id. Returns ObjectNotFoundError when no user
	// mirrors that order.
	GetByEmbeddedOrderID(ctx context.Context, orderID kernel.UUID) (*user.User, error)
}
