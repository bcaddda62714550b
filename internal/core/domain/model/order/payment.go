package order

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// Method identifies how the customer pays for an order.
type Method int

const (
	// MethodUnknown represents an invalid or undefined payment method.
	MethodUnknown Method = iota

	// Cash is paid on delivery; no gateway interaction takes place.
	Cash

	// Card is charged through the payment gateway; a payment record with
	// the gateway intent reference is attached to the order.
	Card
)

// getMethodStrings returns a map of Method values to their string representations.
func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "Unknown",
		Cash:          "Cash",
		Card:          "Card",
	}
}

// MethodFromString parses a payment method from its string representation.
func MethodFromString(s string) (Method, error) {
	switch s {
	case "Cash":
		return Cash, nil
	case "Card":
		return Card, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%q is not a valid payment method", s))
	}
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if m != Cash && m != Card {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the human-readable name of the method.
// This method implements the fmt.Stringer interface.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// PaymentStatus represents the gateway confirmation state of a payment.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means an intent was created but not yet confirmed.
	PaymentPending

	// PaymentConfirmed means the gateway confirmed the charge.
	PaymentConfirmed
)

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentConfirmed {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	switch s {
	case PaymentPending:
		return "Pending"
	case PaymentConfirmed:
		return "Confirmed"
	default:
		return "Unknown"
	}
}

// ErrPaymentIsNotConstructed is returned when using an improperly initialized Payment.
var ErrPaymentIsNotConstructed = errors.New(
	"Payment must be created via NewPayment constructor")

// Payment is the gateway payment record attached one-to-one to a non-cash order.
// It holds the external payment-intent reference; the gateway itself owns the
// charge lifecycle.
type Payment struct {
	id       kernel.UUID
	intentID string
	status   PaymentStatus

	guard guard.ConstructorGuard
}

// NewPayment creates a payment record in PaymentPending status.
// The intent ID is the reference returned by the payment gateway.
func NewPayment(id kernel.UUID, intentID string) (Payment, error) {
	if err := id.Validate(); err != nil {
		return Payment{}, err
	}
	if intentID == "" {
		return Payment{}, errs.NewValueIsRequiredError("intent ID")
	}

	return Payment{
		id:       id,
		intentID: intentID,
		status:   PaymentPending,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestorePayment reconstructs a payment record from persistent storage.
func RestorePayment(id kernel.UUID, intentID string, status PaymentStatus) (Payment, error) {
	p, err := NewPayment(id, intentID)
	if err != nil {
		return Payment{}, err
	}
	if err = status.Validate(); err != nil {
		return Payment{}, err
	}

	p.status = status
	return p, nil
}

// ID returns the payment record's unique identifier.
func (p Payment) ID() kernel.UUID { return p.id }

// IntentID returns the gateway payment-intent reference.
func (p Payment) IntentID() string { return p.intentID }

// Status returns the gateway confirmation state.
func (p Payment) Status() PaymentStatus { return p.status }

// Confirm marks the payment as confirmed by the gateway.
// Confirming an already confirmed payment is a no-op.
func (p Payment) Confirm() Payment {
	p.status = PaymentConfirmed
	return p
}

// Validate checks if the Payment was properly constructed.
func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}
