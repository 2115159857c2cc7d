package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for an order.
// The payment method decides the order's initial status: cash orders start
// pending shop action, transfer orders wait for the payment callback first.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is cash on delivery.
	PaymentCash

	// PaymentTransfer is a bank transfer settled through a payment provider.
	PaymentTransfer
)

// getPaymentMethodStrings returns a map of PaymentMethod values to their wire representations.
func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentCash:     "cash",
		PaymentTransfer: "transfer",
	}
}

// PaymentMethodFromString parses a wire value into a PaymentMethod.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, label := range getPaymentMethodStrings() {
		if label == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the wire value of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// InitialStatus returns the status a freshly created order starts in for this
// payment method: Pending for cash, AwaitingPayment for transfer.
func (m PaymentMethod) InitialStatus() Status {
	if m == PaymentTransfer {
		return AwaitingPayment
	}
	return Pending
}
