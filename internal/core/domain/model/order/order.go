package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when an order is created without line items.
	ErrItemsAreRequired = errors.New("order must contain at least one item")
)

// Order is the aggregate root for a placed purchase. It owns the lifecycle
// status, the claim-protocol delivery phase, and the immutable snapshots taken
// at creation time (line items, shipping address, shop contact).
//
// Invariants:
//   - Must have valid order and customer identifiers
//   - Must contain at least one line item; snapshots never change after creation
//   - The shipper snapshot is nil until a shipper claims the order
//   - A non-unassigned delivery phase implies an assigned shipper
//   - Can only be created through NewOrder or RestoreOrder
//
// Status changes made through the methods below are the only legal way to move
// an order through its lifecycle; the cancellation methods intentionally have
// no transition guard and may overwrite any status.
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	items         []Item
	createdAt     time.Time
	address       Address
	paymentMethod PaymentMethod
	status        Status
	phase         DeliveryPhase
	shop          ShopSnapshot
	shipper       *ShipperSnapshot
	images        []string
	version       int

	isConstructed bool
}

// NewOrder creates a new Order with creation-time snapshots.
// The initial status is derived from the payment method (cash orders start
// Pending, transfer orders AwaitingPayment), the delivery phase starts
// unassigned and no shipper is attached.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	address Address,
	paymentMethod PaymentMethod,
	shop ShopSnapshot,
	images []string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customer ID", err)
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return nil, err
	}
	if err := shop.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		items:         append([]Item(nil), items...),
		createdAt:     time.Now().UTC(),
		address:       address,
		paymentMethod: paymentMethod,
		status:        paymentMethod.InitialStatus(),
		phase:         PhaseUnassigned,
		shop:          shop,
		images:        append([]string(nil), images...),
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence without re-deriving the
// initial status. Status, phase and shipper-assignment consistency are
// validated so corrupted rows surface at load time, not on the next write.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	createdAt time.Time,
	address Address,
	paymentMethod PaymentMethod,
	status Status,
	phase DeliveryPhase,
	shop ShopSnapshot,
	shipper *ShipperSnapshot,
	images []string,
	version int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customer ID", err)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := phase.Validate(); err != nil {
		return nil, err
	}
	if phase != PhaseUnassigned && shipper == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("shipper is invalid",
			fmt.Errorf("%s phase requires an assigned shipper", phase.String()))
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is not greater than 0", version))
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		items:         append([]Item(nil), items...),
		createdAt:     createdAt,
		address:       address,
		paymentMethod: paymentMethod,
		status:        status,
		phase:         phase,
		shop:          shop,
		shipper:       shipper,
		images:        append([]string(nil), images...),
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// Call this when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the line-item snapshots.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// CreatedAt returns the order timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ShippingAddress returns the address snapshot.
func (o *Order) ShippingAddress() Address {
	return o.address
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Phase returns the current claim-protocol delivery phase.
func (o *Order) Phase() DeliveryPhase {
	return o.phase
}

// Shop returns the shop-owner snapshot.
func (o *Order) Shop() ShopSnapshot {
	return o.shop
}

// Shipper returns the assigned shipper's snapshot, or nil if unclaimed.
func (o *Order) Shipper() *ShipperSnapshot {
	return o.shipper
}

// Images returns a copy of the order's image list.
func (o *Order) Images() []string {
	return append([]string(nil), o.images...)
}

// Version returns the optimistic-concurrency version loaded from the store.
func (o *Order) Version() int {
	return o.version
}

// Total returns the sum of all line-item subtotals.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// ConfirmByShop moves the order to SeekingShipper.
// There is no transition guard: a shop confirmation always lands on
// SeekingShipper no matter the current status.
func (o *Order) ConfirmByShop() error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.status = SeekingShipper
	return nil
}

// CancelByCustomer overwrites the status with the customer-cancelled terminal
// label. Unconditional and idempotent.
func (o *Order) CancelByCustomer() error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.status = CustomerCancelled
	return nil
}

// CancelByShop overwrites the status with the shop-cancelled terminal label.
// Unconditional and idempotent.
func (o *Order) CancelByShop() error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.status = ShopCancelled
	return nil
}

// CancelByShipper overwrites the status with the shipper-cancelled terminal
// label. Unconditional and idempotent.
func (o *Order) CancelByShipper() error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.status = ShipperCancelled
	return nil
}

// ResetAfterPayment puts the order back to Pending once the payment provider
// confirms a transfer. Transfer orders need this manual reconciliation step
// before the shop sees them as actionable.
func (o *Order) ResetAfterPayment() error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.status = Pending
	return nil
}

// Claim is the first phase of the shipper handshake: the shipper takes
// ownership of an unclaimed order. The phase moves to processing and the
// lifecycle status to Delivering.
//
// Returns an InvalidTransitionError if any shipper already claimed the order.
// First-writer-wins under concurrency is enforced at the store with a
// conditional update; this method enforces the same rule in-memory.
func (o *Order) Claim(shipper ShipperSnapshot) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := shipper.Validate(); err != nil {
		return err
	}

	newPhase, err := o.phase.Claim()
	if err != nil {
		return err
	}
	if o.shipper != nil {
		return errs.NewInvalidTransitionError("order already processed or completed by another shipper")
	}

	o.phase = newPhase
	o.shipper = &shipper
	o.status = Delivering
	return nil
}

// CompleteDelivery is the second phase of the shipper handshake: only the
// shipper who claimed the order may confirm it while the phase is processing.
// The phase moves to completed and the lifecycle status to Delivered.
func (o *Order) CompleteDelivery(shipperID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := shipperID.Validate(); err != nil {
		return err
	}

	newPhase, err := o.phase.Complete()
	if err != nil {
		return err
	}
	if o.shipper == nil || !o.shipper.ID().IsEqual(shipperID) {
		return errs.NewInvalidTransitionError("order already processed or completed by another shipper")
	}

	o.phase = newPhase
	o.status = Delivered
	return nil
}
