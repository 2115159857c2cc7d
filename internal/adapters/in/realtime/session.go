package realtime

import (
	"sync"

	"marketplace/internal/core/domain/model/order"
)

// sessionBufferSize bounds the outbound queue of one session. A slow or gone
// consumer overflows the buffer and loses events rather than blocking a
// state transition.
const sessionBufferSize = 32

// Session is one connected real-time client. Countdowns registered on it are
// volatile: they live exactly as long as the connection and are never shared
// with other sessions.
type Session struct {
	id      string
	shipper *order.ShipperSnapshot

	mu         sync.Mutex
	closed     bool
	dropped    int
	countdowns map[string]int

	out chan Envelope
}

func newSession(id string, shipper *order.ShipperSnapshot) *Session {
	return &Session{
		id:         id,
		shipper:    shipper,
		countdowns: make(map[string]int),
		out:        make(chan Envelope, sessionBufferSize),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Shipper returns the shipper identity attached to the session, or nil for
// sessions that did not connect as a shipper.
func (s *Session) Shipper() *order.ShipperSnapshot {
	return s.shipper
}

// Events is the outbound stream the transport layer drains.
func (s *Session) Events() <-chan Envelope {
	return s.out
}

// Emit queues an event for the session without blocking. Events to a closed
// session or past a full buffer are dropped.
func (s *Session) Emit(eventName string, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	select {
	case s.out <- Envelope{Event: eventName, Payload: payload}:
	default:
		s.dropped++
	}
}

// registerCountdown starts (or restarts) the countdown for an order on this
// session.
func (s *Session) registerCountdown(orderID string, timeLeft int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || timeLeft <= 0 {
		return
	}
	s.countdowns[orderID] = timeLeft
}

// cancelCountdown drops the countdown for an order, if any.
func (s *Session) cancelCountdown(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.countdowns, orderID)
}

// tickCountdowns advances every countdown on the session by one second,
// emitting the remaining time and, at zero, the expiry event.
func (s *Session) tickCountdowns() {
	s.mu.Lock()
	var pending []Envelope
	for orderID, left := range s.countdowns {
		left--
		pending = append(pending, Envelope{
			Event:   EventCountdown,
			Payload: CountdownPayload{OrderID: orderID, TimeLeft: left},
		})
		if left <= 0 {
			delete(s.countdowns, orderID)
			pending = append(pending, Envelope{
				Event:   EventOrderExpired,
				Payload: OrderExpiredPayload{OrderID: orderID},
			})
		} else {
			s.countdowns[orderID] = left
		}
	}
	s.mu.Unlock()

	for _, envelope := range pending {
		s.Emit(envelope.Event, envelope.Payload)
	}
}

// close marks the session closed, cancels its countdowns and closes the
// outbound channel so the transport drain loop terminates.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.countdowns = nil
	close(s.out)
}
