package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderClaimer handles the accept_order step of the shipper handshake.
type OrderClaimer interface {
	Handle(ctx context.Context, command commands.ClaimOrderByShipperCommand) (*order.Order, error)
}

// OrderCanceller handles the cancel_order request on the customer's behalf.
type OrderCanceller interface {
	Handle(ctx context.Context, command commands.CancelOrderCommand) (*order.Order, error)
}

// Hub is the session registry behind the EventNotifier port. Broadcast fans
// every lifecycle event out to every connected session; directed replies and
// countdowns go through the individual Session.
type Hub struct {
	claimHandler  OrderClaimer
	cancelHandler OrderCanceller
	logger        *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewHub creates a hub with no inbound routing yet. The hub is the notifier
// dependency of the command handlers, so it exists before them; AttachHandlers
// closes the loop once the handlers are built.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:   logger.With("component", "realtime_hub"),
		sessions: make(map[string]*Session),
	}
}

// AttachHandlers wires inbound accept_order/cancel_order routing to the
// command handlers.
func (h *Hub) AttachHandlers(claimHandler OrderClaimer, cancelHandler OrderCanceller) {
	h.claimHandler = claimHandler
	h.cancelHandler = cancelHandler
}

// Register attaches a new session to the hub. Shipper sessions carry the
// shipper identity used by accept_order; other sessions pass nil.
func (h *Hub) Register(shipper *order.ShipperSnapshot) *Session {
	session := newSession(kernel.NewUUID().String(), shipper)

	h.mu.Lock()
	h.sessions[session.id] = session
	h.mu.Unlock()

	h.logger.Info("Session registered", "session_id", session.id, "shipper", shipper != nil)
	return session
}

// Unregister detaches the session, cancelling its countdowns and closing its
// outbound stream.
func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	session, ok := h.sessions[sessionID]
	delete(h.sessions, sessionID)
	h.mu.Unlock()

	if !ok {
		return
	}

	session.close()
	h.logger.Info("Session unregistered", "session_id", sessionID)
}

// Session looks up a connected session by ID.
func (h *Hub) Session(sessionID string) (*Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[sessionID]
	return session, ok
}

// Broadcast delivers the event to every connected session. Implements
// ports.EventNotifier; never blocks, never fails.
func (h *Hub) Broadcast(eventName string, payload any) error {
	h.mu.RLock()
	snapshot := make([]*Session, 0, len(h.sessions))
	for _, session := range h.sessions {
		snapshot = append(snapshot, session)
	}
	h.mu.RUnlock()

	for _, session := range snapshot {
		session.Emit(eventName, payload)
	}

	return nil
}

// TickCountdowns advances every session-local countdown by one second. The
// cron scheduler drives this once per second; tests call it directly.
func (h *Hub) TickCountdowns() {
	h.mu.RLock()
	snapshot := make([]*Session, 0, len(h.sessions))
	for _, session := range h.sessions {
		snapshot = append(snapshot, session)
	}
	h.mu.RUnlock()

	for _, session := range snapshot {
		session.tickCountdowns()
	}
}

// HandleInbound routes one client→server event for the session. Unknown
// events and malformed payloads are logged and dropped; replies go out on the
// originating session only.
func (h *Hub) HandleInbound(ctx context.Context, sessionID, eventName string, payload json.RawMessage) error {
	session, ok := h.Session(sessionID)
	if !ok {
		return fmt.Errorf("unknown session %q", sessionID)
	}

	if eventName != EventOrderCreated && (h.claimHandler == nil || h.cancelHandler == nil) {
		return fmt.Errorf("inbound routing not configured")
	}

	switch eventName {
	case EventOrderCreated:
		return h.handleOrderCreated(session, payload)
	case EventAcceptOrder:
		return h.handleAcceptOrder(ctx, session, payload)
	case EventCancelOrder:
		return h.handleCancelOrder(ctx, session, payload)
	default:
		h.logger.Warn("Unknown inbound event", "session_id", sessionID, "event", eventName)
		return fmt.Errorf("unknown event %q", eventName)
	}
}

func (h *Hub) handleOrderCreated(session *Session, payload json.RawMessage) error {
	var countdown CountdownPayload
	if err := json.Unmarshal(payload, &countdown); err != nil {
		return err
	}

	session.registerCountdown(countdown.OrderID, countdown.TimeLeft)
	return nil
}

func (h *Hub) handleAcceptOrder(ctx context.Context, session *Session, payload json.RawMessage) error {
	orderID, err := decodeOrderID(payload)
	if err != nil {
		return err
	}

	if session.Shipper() == nil {
		session.Emit(EventAcceptOrderFailed, AcceptFailedPayload{
			OrderID: orderID.String(),
			Error:   "session has no shipper identity",
		})
		return nil
	}

	command, err := commands.NewClaimOrderByShipperCommand(orderID, *session.Shipper())
	if err != nil {
		session.Emit(EventAcceptOrderFailed, AcceptFailedPayload{OrderID: orderID.String(), Error: err.Error()})
		return nil
	}

	aggregate, err := h.claimHandler.Handle(ctx, command)
	if err != nil {
		h.logger.Info("Claim rejected", "session_id", session.ID(), "order_id", orderID.String(), "error", err)
		session.Emit(EventAcceptOrderFailed, AcceptFailedPayload{OrderID: orderID.String(), Error: err.Error()})
		return nil
	}

	// The claim handler broadcasts order_accepted to everyone; the claiming
	// session also stops counting this order down.
	session.cancelCountdown(orderID.String())
	h.logger.Info("Claim accepted",
		"session_id", session.ID(),
		"order_id", orderID.String(),
		"status", aggregate.Status().String(),
	)
	return nil
}

func (h *Hub) handleCancelOrder(ctx context.Context, session *Session, payload json.RawMessage) error {
	orderID, err := decodeOrderID(payload)
	if err != nil {
		return err
	}

	command, err := commands.NewCancelOrderByCustomerCommand(orderID)
	if err != nil {
		return err
	}

	if _, err = h.cancelHandler.Handle(ctx, command); err != nil {
		h.logger.Warn("Cancel rejected", "session_id", session.ID(), "order_id", orderID.String(), "error", err)
		return err
	}

	// order_cancelled reaches the session through the handler's broadcast.
	session.cancelCountdown(orderID.String())
	return nil
}

// decodeOrderID accepts the bare string form the wire protocol uses for
// accept_order and cancel_order payloads.
func decodeOrderID(payload json.RawMessage) (kernel.UUID, error) {
	var raw string
	if err := json.Unmarshal(payload, &raw); err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromString(raw)
}
