package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// DeliveryPhase is the claim-protocol vocabulary layered on top of Status.
// It tracks the two-phase shipper handshake in the English labels the shipper
// clients exchange, separate from the Vietnamese lifecycle labels.
//
// Transition table:
//
//	PhaseUnassigned ──> PhaseProcessing ──> PhaseCompleted
//
// No other transition is allowed; a second claim on a processing or completed
// order fails.
type DeliveryPhase int

const (
	// PhaseUnassigned means no shipper has claimed the order yet.
	PhaseUnassigned DeliveryPhase = iota

	// PhaseProcessing means a shipper claimed the order and is delivering it.
	PhaseProcessing

	// PhaseCompleted means the assigned shipper confirmed the delivery.
	PhaseCompleted
)

// getPhaseStrings returns a map of DeliveryPhase values to their wire representations.
func getPhaseStrings() map[DeliveryPhase]string {
	return map[DeliveryPhase]string{
		PhaseUnassigned: "unassigned",
		PhaseProcessing: "processing",
		PhaseCompleted:  "completed",
	}
}

// Validate checks if the DeliveryPhase value is valid.
func (p DeliveryPhase) Validate() error {
	if _, ok := getPhaseStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery phase is invalid",
			fmt.Errorf("%d is not a valid delivery phase", p),
		)
	}
	return nil
}

// String returns the wire label of the phase.
func (p DeliveryPhase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Claim transitions the phase to PhaseProcessing.
// Only valid from PhaseUnassigned; any other phase means another shipper
// already holds or held the order.
func (p DeliveryPhase) Claim() (DeliveryPhase, error) {
	if p != PhaseUnassigned {
		return 0, errs.NewInvalidTransitionErrorWithCause(
			"order already processed or completed by another shipper",
			fmt.Errorf("cannot claim order in %s phase", p.String()),
		)
	}
	return PhaseProcessing, nil
}

// Complete transitions the phase to PhaseCompleted.
// Only valid from PhaseProcessing.
func (p DeliveryPhase) Complete() (DeliveryPhase, error) {
	if p != PhaseProcessing {
		return 0, errs.NewInvalidTransitionErrorWithCause(
			"order already processed or completed by another shipper",
			fmt.Errorf("cannot complete order in %s phase", p.String()),
		)
	}
	return PhaseCompleted, nil
}
