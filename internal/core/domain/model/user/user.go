package user

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a user without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User represents a marketplace customer. It is an aggregate root that owns
// two denormalized mirrors of order state so a user's history can be read
// without a join:
//
//   - orders: one entry per placed order, mirroring the lifecycle status
//   - carts: one entry per claimed order, mirroring the delivery phase
//
// The mirror invariant — an entry's status/phase always equals the Order
// aggregate's — is upheld by patching the mirror in the same unit of work that
// writes the order. Both mirrors are patched through one primitive, patchMirror.
type User struct {
	// id uniquely identifies the user
	id kernel.UUID
	// name is the human-readable name of the user
	name string
	// phone is the user's contact number
	phone string
	// orders mirrors the lifecycle status of every order the user placed
	orders []OrderMirror
	// carts mirrors the delivery phase of orders in the shipper claim protocol
	carts []CartMirror

	// isConstructed ensures the user was created via NewUser or RestoreUser
	isConstructed bool
}

// NewUser creates a new User with empty mirrors.
func NewUser(id kernel.UUID, name, phone string) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &User{
		id:            id,
		name:          name,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a User from persistence including its mirrors.
func RestoreUser(id kernel.UUID, name, phone string, orders []OrderMirror, carts []CartMirror) (*User, error) {
	u, err := NewUser(id, name, phone)
	if err != nil {
		return nil, err
	}

	u.orders = append([]OrderMirror(nil), orders...)
	u.carts = append([]CartMirror(nil), carts...)
	return u, nil
}

// Validate ensures the User instance was properly constructed through a factory.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's name.
func (u *User) Name() string {
	return u.name
}

// Phone returns the user's contact number.
func (u *User) Phone() string {
	return u.phone
}

// Orders returns a copy of the lifecycle-status mirror.
func (u *User) Orders() []OrderMirror {
	return append([]OrderMirror(nil), u.orders...)
}

// Carts returns a copy of the delivery-phase mirror.
func (u *User) Carts() []CartMirror {
	return append([]CartMirror(nil), u.carts...)
}

// AddOrderMirror appends a mirror entry for a freshly created order.
// Adding the same order twice is rejected.
func (u *User) AddOrderMirror(orderID kernel.UUID, status order.Status) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	for _, entry := range u.orders {
		if entry.OrderID.IsEqual(orderID) {
			return errs.NewValueIsInvalidError("order is already mirrored")
		}
	}

	u.orders = append(u.orders, OrderMirror{OrderID: orderID, Status: status})
	return nil
}

// PatchOrderStatus overwrites the mirrored lifecycle status for the given
// order id. Returns false if the user has no mirror entry for that order;
// callers treat a missing entry as non-fatal, matching the source behavior.
func (u *User) PatchOrderStatus(orderID kernel.UUID, status order.Status) bool {
	return patchMirror(u.orders, orderID, func(entry *OrderMirror) {
		entry.Status = status
	})
}

// PatchCartPhase overwrites the mirrored delivery phase for the given order
// id, creating the cart entry on first claim.
func (u *User) PatchCartPhase(orderID kernel.UUID, phase order.DeliveryPhase) {
	if patchMirror(u.carts, orderID, func(entry *CartMirror) {
		entry.Phase = phase
	}) {
		return
	}

	u.carts = append(u.carts, CartMirror{OrderID: orderID, Phase: phase})
}

// OrderMirror is a denormalized copy of an order's lifecycle status embedded
// in the user record.
type OrderMirror struct {
	OrderID kernel.UUID
	Status  order.Status
}

// mirrorID lets patchMirror address an OrderMirror generically.
func (m OrderMirror) mirrorID() kernel.UUID { return m.OrderID }

// CartMirror is a denormalized copy of an order's delivery phase embedded in
// the user record, maintained by the shipper claim protocol.
type CartMirror struct {
	OrderID kernel.UUID
	Phase   order.DeliveryPhase
}

// mirrorID lets patchMirror address a CartMirror generically.
func (m CartMirror) mirrorID() kernel.UUID { return m.OrderID }

type mirrorEntry interface {
	mirrorID() kernel.UUID
}

// patchMirror is the single shared primitive behind both mirror arrays:
// locate the entry for orderID and mutate it in place. Reports whether an
// entry was found.
func patchMirror[E mirrorEntry](entries []E, orderID kernel.UUID, patch func(*E)) bool {
	for i := range entries {
		if entries[i].mirrorID().IsEqual(orderID) {
			patch(&entries[i])
			return true
		}
	}
	return false
}
