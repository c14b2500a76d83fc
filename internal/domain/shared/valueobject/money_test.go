package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(100), EUR)

		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
		assert.Equal(t, EUR, m.Currency())
	})

	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")

		assert.Error(t, err)
	})
}

func TestMoney_AddSubtract(t *testing.T) {
	t.Run("adds amounts with same currency", func(t *testing.T) {
		a := NewMoneyEURFromFloat(10.50)
		b := NewMoneyEURFromFloat(4.25)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, "14.75", sum.StringFixed(2))
	})

	t.Run("rejects mixed currencies", func(t *testing.T) {
		a := NewMoneyEURFromFloat(10)
		b, _ := NewMoney(decimal.NewFromInt(10), USD)

		_, err := a.Add(b)
		assert.Error(t, err)

		_, err = a.Subtract(b)
		assert.Error(t, err)
	})

	t.Run("subtracts amounts", func(t *testing.T) {
		a := NewMoneyEURFromFloat(10)
		b := NewMoneyEURFromFloat(4)

		diff, err := a.Subtract(b)

		require.NoError(t, err)
		assert.Equal(t, "6.00", diff.StringFixed(2))
	})
}

func TestMoney_ApplyDiscount(t *testing.T) {
	t.Run("applies percentage discount", func(t *testing.T) {
		m := NewMoneyEURFromFloat(50)

		discounted := m.ApplyDiscount(decimal.NewFromInt(20))

		assert.Equal(t, "40.00", discounted.StringFixed(2))
	})

	t.Run("zero discount leaves amount unchanged", func(t *testing.T) {
		m := NewMoneyEURFromFloat(50)

		discounted := m.ApplyDiscount(decimal.Zero)

		assert.True(t, m.Equals(discounted))
	})

	t.Run("full discount yields zero", func(t *testing.T) {
		m := NewMoneyEURFromFloat(50)

		discounted := m.ApplyDiscount(decimal.NewFromInt(100))

		assert.True(t, discounted.IsZero())
	})
}

func TestMoney_DisplayRounding(t *testing.T) {
	t.Run("keeps full precision until formatted", func(t *testing.T) {
		// 10 / 3 has a long fraction; the internal amount must not be
		// truncated before display.
		m := NewMoneyEUR(decimal.NewFromInt(10).Div(decimal.NewFromInt(3)))

		tripled := m.Multiply(decimal.NewFromInt(3))

		assert.Equal(t, "10.00", tripled.StringFixed(2))
	})

	t.Run("String formats to two places", func(t *testing.T) {
		m := NewMoneyEURFromFloat(96.8)

		assert.Equal(t, "96.80 EUR", m.String())
	})
}

func TestMoney_JSON(t *testing.T) {
	t.Run("round-trips through JSON", func(t *testing.T) {
		m := NewMoneyEURFromFloat(12.34)

		data, err := json.Marshal(m)
		require.NoError(t, err)

		var decoded Money
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, m.Equals(decoded))
	})
}

func TestMoney_Scan(t *testing.T) {
	t.Run("scans string values", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("42.10"))

		assert.Equal(t, "42.10", m.StringFixed(2))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("scans nil as zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))

		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(3.14))
	})
}
