package paymentmethod_test

import (
	"testing"
	"time"

	"grocery/internal/core/domain/model/paymentmethod"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is a fixed reference time so expiry tests stay deterministic.
var now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func validCard(t *testing.T) paymentmethod.CardDetails {
	t.Helper()
	card, err := paymentmethod.NewCardDetails(
		"4242424242424242", "JANE DOE", 12, 2028, "123", now)
	require.NoError(t, err)
	return card
}

func TestNewCardDetails_ValidInput(t *testing.T) {
	card := validCard(t)

	assert.Equal(t, "4242424242424242", card.Number())
	assert.Equal(t, "JANE DOE", card.HolderName())
	assert.Equal(t, 12, card.ExpiryMonth())
	assert.Equal(t, 2028, card.ExpiryYear())
	assert.Equal(t, "123", card.CVV())
	assert.Equal(t, "4242", card.LastFour())
	require.NoError(t, card.Validate())
}

func TestNewCardDetails_CardNumber(t *testing.T) {
	t.Run("should reject a number failing the Luhn check", func(t *testing.T) {
		_, err := paymentmethod.NewCardDetails(
			"4242424242424241", "JANE DOE", 12, 2028, "123", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "card number")
	})

	t.Run("should reject numbers with invalid length", func(t *testing.T) {
		for _, number := range []string{"", "42424242424", "42424242424242424242"} {
			_, err := paymentmethod.NewCardDetails(number, "JANE DOE", 12, 2028, "123", now)

			require.Error(t, err, "expected %q to be rejected", number)
			assert.Contains(t, err.Error(), "card number")
		}
	})

	t.Run("should reject non-digit characters", func(t *testing.T) {
		_, err := paymentmethod.NewCardDetails(
			"4242 4242 4242 4242", "JANE DOE", 12, 2028, "123", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "card number")
	})
}

func TestNewCardDetails_Expiry(t *testing.T) {
	t.Run("should reject an out-of-range month", func(t *testing.T) {
		for _, month := range []int{0, 13, -1} {
			_, err := paymentmethod.NewCardDetails(
				"4242424242424242", "JANE DOE", month, 2028, "123", now)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "expiry month")
		}
	})

	t.Run("should reject an expiry in the past", func(t *testing.T) {
		_, err := paymentmethod.NewCardDetails(
			"4242424242424242", "JANE DOE", 5, 2026, "123", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is in the past")
	})

	t.Run("should accept the current month", func(t *testing.T) {
		_, err := paymentmethod.NewCardDetails(
			"4242424242424242", "JANE DOE", 6, 2026, "123", now)

		require.NoError(t, err)
	})

	t.Run("should reject a past year", func(t *testing.T) {
		_, err := paymentmethod.NewCardDetails(
			"4242424242424242", "JANE DOE", 12, 2025, "123", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is in the past")
	})
}

func TestNewCardDetails_CVV(t *testing.T) {
	t.Run("should accept 3 and 4 digit values", func(t *testing.T) {
		for _, cvv := range []string{"123", "1234"} {
			_, err := paymentmethod.NewCardDetails(
				"4242424242424242", "JANE DOE", 12, 2028, cvv, now)

			require.NoError(t, err)
		}
	})

	t.Run("should reject malformed values", func(t *testing.T) {
		for _, cvv := range []string{"", "12", "12345", "12a"} {
			_, err := paymentmethod.NewCardDetails(
				"4242424242424242", "JANE DOE", 12, 2028, cvv, now)

			require.Error(t, err, "expected cvv %q to be rejected", cvv)
			assert.Contains(t, err.Error(), "cvv")
		}
	})
}

func TestNewCardDetails_HolderName(t *testing.T) {
	t.Run("should require a holder name", func(t *testing.T) {
		_, err := paymentmethod.NewCardDetails(
			"4242424242424242", "", 12, 2028, "123", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "holder name")
	})
}

func TestCardDetails_Validate(t *testing.T) {
	t.Run("should reject zero-value card details", func(t *testing.T) {
		var card paymentmethod.CardDetails

		err := card.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, paymentmethod.ErrCardDetailsAreNotConstructed)
	})
}
