package paymentmethod

import (
	"errors"
	"fmt"
	"time"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrCardDetailsAreNotConstructed is returned when using improperly initialized CardDetails.
var ErrCardDetailsAreNotConstructed = errors.New(
	"CardDetails must be created via NewCardDetails constructor")

// CardDetails is the raw card input captured when a customer saves a payment
// method. It exists only in memory during tokenization; the CVV is validated
// but never persisted anywhere.
type CardDetails struct {
	number      string
	holderName  string
	expiryMonth int
	expiryYear  int
	cvv         string

	guard guard.ConstructorGuard
}

// NewCardDetails creates validated card input.
//
// Validation rules:
//   - Card number must be 12-19 digits and pass the Luhn check
//   - Holder name is required
//   - Expiry month must be in [1,12] and the expiry must not be in the past
//     relative to now
//   - CVV must be 3 or 4 digits
func NewCardDetails(number, holderName string, expiryMonth, expiryYear int, cvv string, now time.Time) (CardDetails, error) {
	var err error
	if !isValidCardNumber(number) {
		err = errors.Join(err, errs.NewValueIsInvalidError("card number"))
	}
	if holderName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("holder name"))
	}
	if expiryMonth < 1 || expiryMonth > 12 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("expiry month", expiryMonth, 1, 12))
	} else if expiryYear < now.Year() ||
		(expiryYear == now.Year() && expiryMonth < int(now.Month())) {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("expiry",
			fmt.Errorf("%02d/%d is in the past", expiryMonth, expiryYear)))
	}
	if len(cvv) < 3 || len(cvv) > 4 || !isAllDigits(cvv) {
		err = errors.Join(err, errs.NewValueIsInvalidError("cvv"))
	}
	if err != nil {
		return CardDetails{}, err
	}

	return CardDetails{
		number:      number,
		holderName:  holderName,
		expiryMonth: expiryMonth,
		expiryYear:  expiryYear,
		cvv:         cvv,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Number returns the full card number.
func (c CardDetails) Number() string { return c.number }

// HolderName returns the card holder name.
func (c CardDetails) HolderName() string { return c.holderName }

// ExpiryMonth returns the expiry month (1-12).
func (c CardDetails) ExpiryMonth() int { return c.expiryMonth }

// ExpiryYear returns the four-digit expiry year.
func (c CardDetails) ExpiryYear() int { return c.expiryYear }

// CVV returns the card verification value. Used for gateway tokenization only.
func (c CardDetails) CVV() string { return c.cvv }

// LastFour returns the last four digits of the card number.
func (c CardDetails) LastFour() string {
	if len(c.number) < 4 {
		return c.number
	}
	return c.number[len(c.number)-4:]
}

// Validate checks if the CardDetails were properly constructed.
func (c CardDetails) Validate() error {
	return c.guard.Validate(ErrCardDetailsAreNotConstructed)
}

// isValidCardNumber reports whether the number has a plausible length,
// contains only digits, and passes the Luhn checksum.
func isValidCardNumber(number string) bool {
	if len(number) < 12 || len(number) > 19 || !isAllDigits(number) {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
