package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// The string form of each status is its wire value: the Vietnamese labels are
// what clients and the embedded user mirror have always carried, so they are
// preserved verbatim.
//
// Lifecycle:
//
//	Pending / AwaitingPayment ──> SeekingShipper ──> Delivering ──> Delivered
//	          │                        │                 │
//	          └────────────────────────┴─────────────────┴──> cancelled (terminal)
//
// Cancellations overwrite the status unconditionally regardless of the current
// state, which makes them idempotent. Delivered and the three cancelled
// statuses are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a cash order, awaiting shop action.
	Pending

	// AwaitingPayment is the initial status of a transfer order,
	// waiting for the payment provider callback.
	AwaitingPayment

	// SeekingShipper means the shop confirmed the order and a shipper
	// can now claim it.
	SeekingShipper

	// Delivering means a shipper claimed the order and is on the way.
	Delivering

	// CustomerCancelled is the terminal status after a customer cancellation.
	CustomerCancelled

	// ShopCancelled is the terminal status after a shop cancellation.
	ShopCancelled

	// ShipperCancelled is the terminal status after a shipper cancellation.
	ShipperCancelled

	// Delivered is the terminal status of a completed delivery.
	Delivered
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Pending:           "Chưa giải quyết",
		AwaitingPayment:   "Chờ thanh toán",
		SeekingShipper:    "Tìm người giao hàng",
		Delivering:        "Đang giao hàng",
		CustomerCancelled: "Người dùng đã hủy đơn",
		ShopCancelled:     "Nhà hàng đã hủy đơn",
		ShipperCancelled:  "Shipper đã hủy đơn",
		Delivered:         "Đơn hàng đã được giao hoàn tất",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:           "Chưa giải quyết",
		AwaitingPayment:   "Chờ thanh toán",
		SeekingShipper:    "Tìm người giao hàng",
		Delivering:        "Đang giao hàng",
		CustomerCancelled: "Người dùng đã hủy đơn",
		ShopCancelled:     "Nhà hàng đã hủy đơn",
		ShipperCancelled:  "Shipper đã hủy đơn",
		Delivered:         "Đơn hàng đã được giao hoàn tất",
	}
}

// StatusFromString parses a wire label back into a Status.
// Returns an error for unrecognized labels.
func StatusFromString(s string) (Status, error) {
	for status, label := range getValidStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status label", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire label of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the order lifecycle.
// Terminal statuses are the three cancellations and Delivered.
func (s Status) IsTerminal() bool {
	switch s {
	case CustomerCancelled, ShopCancelled, ShipperCancelled, Delivered:
		return true
	default:
		return false
	}
}
