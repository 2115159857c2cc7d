package ports

// Broadcast event names announced by the lifecycle engine.
const (
	// EventOrderConfirmed announces a status change toward delivery
	// (shop confirmation, payment reconciliation).
	EventOrderConfirmed = "order_confirmed"

	// EventOrderCancelled announces a cancellation by any actor.
	EventOrderCancelled = "order_cancelled"

	// EventOrderAccepted announces a shipper claim or completion.
	EventOrderAccepted = "order_accepted"
)

// EventNotifier publishes lifecycle transitions to connected real-time
// sessions. Delivery is best-effort fan-out to every current subscriber:
// no targeting, no acknowledgement, no replay for late joiners.
//
// A broadcast must never fail or block the state transition that triggered
// it; implementations return ErrTransportUnavailable-style errors only so the
// caller can log them.
type EventNotifier interface {
	// Broadcast delivers the named event with its payload to all sessions.
	Broadcast(eventName string, payload any) error
}
