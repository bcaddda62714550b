package kernel_test

import (
	"math"
	"testing"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative cents", func(t *testing.T) {
		m, err := kernel.NewMoney(1250)

		require.NoError(t, err)
		assert.Equal(t, int64(1250), m.Cents())
		assert.False(t, m.IsZero())
	})

	t.Run("should create zero money", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestZeroMoney(t *testing.T) {
	t.Run("should create valid zero money", func(t *testing.T) {
		m := kernel.ZeroMoney()

		require.NoError(t, m.Validate())
		assert.True(t, m.IsZero())
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add two amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(1000)
		b, _ := kernel.NewMoney(550)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(1550), sum.Cents())
	})

	t.Run("should reject not constructed operands", func(t *testing.T) {
		a := kernel.ZeroMoney()
		var b kernel.Money // zero value

		_, err := a.Add(b)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoney_MulQty(t *testing.T) {
	t.Run("should multiply by quantity", func(t *testing.T) {
		unit, _ := kernel.NewMoney(325)

		total, err := unit.MulQty(3)

		require.NoError(t, err)
		assert.Equal(t, int64(975), total.Cents())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		unit, _ := kernel.NewMoney(325)

		for _, qty := range []int{0, -1, -100} {
			_, err := unit.MulQty(qty)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject products that overflow", func(t *testing.T) {
		unit, _ := kernel.NewMoney(math.MaxInt64/2 + 1)

		_, err := unit.MulQty(2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "overflows")
	})

	t.Run("should allow the largest exact product", func(t *testing.T) {
		unit, _ := kernel.NewMoney(math.MaxInt64 / 3)

		total, err := unit.MulQty(3)

		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64/3*3), total.Cents())
	})
}

func TestMoney_String(t *testing.T) {
	t.Run("should format as decimal", func(t *testing.T) {
		testCases := []struct {
			cents    int64
			expected string
		}{
			{0, "0.00"},
			{5, "0.05"},
			{4550, "45.50"},
			{100000, "1000.00"},
		}

		for _, tc := range testCases {
			m, err := kernel.NewMoney(tc.cents)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.String())
		}
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare by amount", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(100)
		c, _ := kernel.NewMoney(200)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should fail for zero value instances", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}
