package billing

import (
	"testing"

	"github.com/facturante/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, invoiceID uuid.UUID, qty float64, unitPrice float64, discount float64) InvoiceLine {
	t.Helper()
	line, err := NewInvoiceLine(
		invoiceID,
		"línea",
		decimal.NewFromFloat(qty),
		valueobject.NewMoneyEURFromFloat(unitPrice),
		decimal.NewFromFloat(discount),
	)
	require.NoError(t, err)
	return *line
}

func TestCalculateTotals(t *testing.T) {
	invoiceID := uuid.New()
	rate21 := decimal.NewFromFloat(0.21)

	t.Run("worked example at 21 percent", func(t *testing.T) {
		lines := []InvoiceLine{
			mustLine(t, invoiceID, 2, 10, 0),
			mustLine(t, invoiceID, 1, 50, 20),
			mustLine(t, invoiceID, 5, 4, 0),
		}

		totals, err := CalculateTotals(lines, rate21)

		require.NoError(t, err)
		assert.Equal(t, "80.00", totals.TaxBase.StringFixed(2))
		assert.Equal(t, "16.80", totals.TaxTotal.StringFixed(2))
		assert.Equal(t, "96.80", totals.GrandTotal.StringFixed(2))
	})

	t.Run("no lines yields zero totals", func(t *testing.T) {
		totals, err := CalculateTotals(nil, rate21)

		require.NoError(t, err)
		assert.True(t, totals.TaxBase.IsZero())
		assert.True(t, totals.TaxTotal.IsZero())
		assert.True(t, totals.GrandTotal.IsZero())
	})

	t.Run("zero rate yields grand total equal to base", func(t *testing.T) {
		lines := []InvoiceLine{mustLine(t, invoiceID, 3, 7, 0)}

		totals, err := CalculateTotals(lines, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, totals.TaxTotal.IsZero())
		assert.True(t, totals.GrandTotal.Equals(totals.TaxBase))
	})

	t.Run("grand total is always base plus tax", func(t *testing.T) {
		lines := []InvoiceLine{
			mustLine(t, invoiceID, 1.5, 19.99, 7),
			mustLine(t, invoiceID, 42, 0.07, 3.5),
		}

		totals, err := CalculateTotals(lines, decimal.NewFromFloat(0.10))

		require.NoError(t, err)
		sum, err := totals.TaxBase.Add(totals.TaxTotal)
		require.NoError(t, err)
		assert.True(t, totals.GrandTotal.Equals(sum))
	})

	t.Run("full discount removes a line from the base", func(t *testing.T) {
		with, err := CalculateTotals([]InvoiceLine{
			mustLine(t, invoiceID, 2, 10, 0),
			mustLine(t, invoiceID, 1, 50, 100),
		}, rate21)
		require.NoError(t, err)

		without, err := CalculateTotals([]InvoiceLine{
			mustLine(t, invoiceID, 2, 10, 0),
		}, rate21)
		require.NoError(t, err)

		assert.True(t, with.TaxBase.Equals(without.TaxBase))
		assert.True(t, with.GrandTotal.Equals(without.GrandTotal))
	})

	t.Run("larger discount never raises the base", func(t *testing.T) {
		low, err := CalculateTotals([]InvoiceLine{mustLine(t, invoiceID, 3, 25, 10)}, rate21)
		require.NoError(t, err)
		high, err := CalculateTotals([]InvoiceLine{mustLine(t, invoiceID, 3, 25, 40)}, rate21)
		require.NoError(t, err)

		less, err := high.TaxBase.LessThan(low.TaxBase)
		require.NoError(t, err)
		assert.True(t, less)
	})

	t.Run("no rounding before summation", func(t *testing.T) {
		// Three lines of 1/3 each must sum to exactly 1, not 0.99 or 1.02.
		third := decimal.NewFromInt(1).Div(decimal.NewFromInt(3))
		line, err := NewInvoiceLine(invoiceID, "tercio", third, valueobject.NewMoneyEUR(decimal.NewFromInt(1)), decimal.Zero)
		require.NoError(t, err)
		lines := []InvoiceLine{*line, *line, *line}

		totals, err := CalculateTotals(lines, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, totals.TaxBase.Amount().Equal(decimal.NewFromInt(1)))
	})
}

func TestLineTotal(t *testing.T) {
	t.Run("discount applies to unit price before quantity", func(t *testing.T) {
		total := LineTotal(
			valueobject.NewMoneyEURFromFloat(50),
			decimal.NewFromInt(1),
			decimal.NewFromInt(20),
		)

		assert.Equal(t, "40.00", total.StringFixed(2))
	})

	t.Run("scales linearly with quantity", func(t *testing.T) {
		one := LineTotal(valueobject.NewMoneyEURFromFloat(12.34), decimal.NewFromInt(1), decimal.NewFromInt(5))
		four := LineTotal(valueobject.NewMoneyEURFromFloat(12.34), decimal.NewFromInt(4), decimal.NewFromInt(5))

		assert.True(t, four.Equals(one.Multiply(decimal.NewFromInt(4))))
	})
}

func TestNewInvoiceLine(t *testing.T) {
	invoiceID := uuid.New()
	price := valueobject.NewMoneyEURFromFloat(10)

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewInvoiceLine(invoiceID, "línea", decimal.Zero, price, decimal.Zero)

		assert.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewInvoiceLine(invoiceID, "línea", decimal.NewFromInt(-1), price, decimal.Zero)

		assert.Error(t, err)
	})

	t.Run("rejects discount above 100", func(t *testing.T) {
		_, err := NewInvoiceLine(invoiceID, "línea", decimal.NewFromInt(1), price, decimal.NewFromInt(101))

		assert.Error(t, err)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := NewInvoiceLine(invoiceID, "", decimal.NewFromInt(1), price, decimal.Zero)

		assert.Error(t, err)
	})

	t.Run("links and unlinks a product", func(t *testing.T) {
		line, err := NewInvoiceLine(invoiceID, "línea", decimal.NewFromInt(1), price, decimal.Zero)
		require.NoError(t, err)
		assert.Nil(t, line.ProductID)

		productID := uuid.New()
		require.NoError(t, line.LinkProduct(productID))
		require.NotNil(t, line.ProductID)
		assert.Equal(t, productID, *line.ProductID)

		line.UnlinkProduct()
		assert.Nil(t, line.ProductID)
	})
}
