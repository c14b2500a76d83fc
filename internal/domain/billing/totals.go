package billing

import (
	"github.com/facturante/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Totals holds the three computed amounts of an invoice. All three are
// exact decimals: rounding to two places happens only at presentation.
type Totals struct {
	TaxBase    valueobject.Money
	TaxTotal   valueobject.Money
	GrandTotal valueobject.Money
}

// LineTotal computes the extended amount of a single line. The discount
// is applied to the unit price first, then the result is scaled by the
// quantity. No intermediate rounding.
func LineTotal(unitPrice valueobject.Money, quantity, discountPercent decimal.Decimal) valueobject.Money {
	return unitPrice.ApplyDiscount(discountPercent).Multiply(quantity)
}

// CalculateTotals sums the exact line totals into the tax base, applies
// the tax fraction to the whole base (never per line), and adds the two
// for the grand total. With no lines all three amounts are zero.
// Fails only when lines mix currencies.
func CalculateTotals(lines []InvoiceLine, taxFraction decimal.Decimal) (Totals, error) {
	base := valueobject.ZeroEUR()
	if len(lines) > 0 {
		base = valueobject.Zero(lines[0].UnitPrice.Currency())
	}

	for i := range lines {
		sum, err := base.Add(lines[i].Total())
		if err != nil {
			return Totals{}, err
		}
		base = sum
	}

	tax := base.Multiply(taxFraction)
	grand, err := base.Add(tax)
	if err != nil {
		return Totals{}, err
	}

	return Totals{
		TaxBase:    base,
		TaxTotal:   tax,
		GrandTotal: grand,
	}, nil
}
