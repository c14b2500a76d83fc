package billing

import (
	"time"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// TaxRate is a named VAT (IVA) rate shared by all tenants, e.g.
// "General 21%". Percent is stored as a percentage, not a fraction.
type TaxRate struct {
	shared.BaseEntity
	Name    string
	Percent decimal.Decimal
}

// NewTaxRate creates a new tax rate
func NewTaxRate(name string, percent decimal.Decimal) (*TaxRate, error) {
	if err := validateTaxRateName(name); err != nil {
		return nil, err
	}
	if err := validateTaxRatePercent(percent); err != nil {
		return nil, err
	}

	return &TaxRate{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Percent:    percent,
	}, nil
}

// Rename updates the tax rate display name
func (t *TaxRate) Rename(name string) error {
	if err := validateTaxRateName(name); err != nil {
		return err
	}

	t.Name = name
	t.UpdatedAt = time.Now()

	return nil
}

// SetPercent updates the rate percentage
func (t *TaxRate) SetPercent(percent decimal.Decimal) error {
	if err := validateTaxRatePercent(percent); err != nil {
		return err
	}

	t.Percent = percent
	t.UpdatedAt = time.Now()

	return nil
}

// Fraction returns the rate as a multiplier, e.g. 21 -> 0.21
func (t *TaxRate) Fraction() decimal.Decimal {
	return t.Percent.Div(oneHundred)
}

func validateTaxRateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Tax rate name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Tax rate name cannot exceed 100 characters")
	}
	return nil
}

func validateTaxRatePercent(percent decimal.Decimal) error {
	if percent.IsNegative() {
		return shared.NewDomainError("INVALID_PERCENT", "Tax rate percent cannot be negative")
	}
	if percent.GreaterThan(oneHundred) {
		return shared.NewDomainError("INVALID_PERCENT", "Tax rate percent cannot exceed 100")
	}
	return nil
}
