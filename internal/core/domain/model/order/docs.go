// Package order provides the Order aggregate root and its lifecycle state
// machine for the marketplace system.
//
// The package includes:
//   - Order: The aggregate root holding creation-time snapshots and the status
//   - Status: The lifecycle enum with its Vietnamese wire labels
//   - DeliveryPhase: The English two-phase shipper-claim vocabulary
//   - PaymentMethod, Item, Address, ShopSnapshot, ShipperSnapshot value objects
//
// Key business rules:
//   - Line items, shipping address and shop contact are snapshots frozen at
//     creation; catalog changes never rewrite a placed order
//   - The initial status is derived from the payment method
//   - Cancellations overwrite the status unconditionally and are idempotent
//   - A shipper claims an order in two phases: claim (processing) then
//     complete (completed); only the claiming shipper may complete
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
