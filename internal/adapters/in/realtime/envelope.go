// Package realtime implements the in-process session hub behind the
// EventNotifier port: global fan-out of lifecycle events plus the
// per-session countdown sub-protocol and inbound event routing.
package realtime

// Client→server event names. Server→broadcast names live in ports.
const (
	// EventOrderCreated registers a session-local countdown for a new order.
	EventOrderCreated = "order_created"

	// EventAcceptOrder asks the server to claim (or complete) an order for
	// the shipper attached to the session.
	EventAcceptOrder = "accept_order"

	// EventCancelOrder asks the server to cancel an order on the customer's
	// behalf.
	EventCancelOrder = "cancel_order"
)

// Server→client (session-scoped) event names.
const (
	// EventCountdown carries the remaining seconds of a session countdown.
	EventCountdown = "countdown"

	// EventOrderExpired fires once when a session countdown reaches zero.
	EventOrderExpired = "order_expired"

	// EventAcceptOrderFailed is the directed failure reply to accept_order.
	EventAcceptOrderFailed = "accept_order_failed"
)

// Envelope is one outbound wire message: an event name and its payload.
type Envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// CountdownPayload is the payload of order_created (inbound) and countdown
// (outbound) events.
type CountdownPayload struct {
	OrderID  string `json:"orderId"`
	TimeLeft int    `json:"timeLeft"`
}

// OrderExpiredPayload is the payload of order_expired events.
type OrderExpiredPayload struct {
	OrderID string `json:"orderId"`
}

// OrderStatusPayload is the payload of order_accepted, order_cancelled and
// order_confirmed events.
type OrderStatusPayload struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// AcceptFailedPayload is the payload of accept_order_failed events.
type AcceptFailedPayload struct {
	OrderID string `json:"orderId"`
	Error   string `json:"error"`
}
