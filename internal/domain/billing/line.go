package billing

import (
	"time"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLine is a single position on an invoice. ProductID is optional:
// free-text lines carry only a description, catalog lines point back at
// the product they were priced from.
type InvoiceLine struct {
	shared.BaseEntity
	InvoiceID       uuid.UUID
	ProductID       *uuid.UUID
	Description     string
	Quantity        decimal.Decimal
	UnitPrice       valueobject.Money
	DiscountPercent decimal.Decimal
}

// NewInvoiceLine creates a new line for an invoice
func NewInvoiceLine(invoiceID uuid.UUID, description string, quantity decimal.Decimal, unitPrice valueobject.Money, discountPercent decimal.Decimal) (*InvoiceLine, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice ID cannot be empty")
	}
	if err := validateLineFields(description, quantity, unitPrice, discountPercent); err != nil {
		return nil, err
	}

	return &InvoiceLine{
		BaseEntity:      shared.NewBaseEntity(),
		InvoiceID:       invoiceID,
		Description:     description,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		DiscountPercent: discountPercent,
	}, nil
}

// LinkProduct points the line at the catalog product it was taken from
func (l *InvoiceLine) LinkProduct(productID uuid.UUID) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}

	id := productID
	l.ProductID = &id
	l.UpdatedAt = time.Now()

	return nil
}

// UnlinkProduct turns the line back into a free-text line
func (l *InvoiceLine) UnlinkProduct() {
	l.ProductID = nil
	l.UpdatedAt = time.Now()
}

// Update replaces the billable fields of the line
func (l *InvoiceLine) Update(description string, quantity decimal.Decimal, unitPrice valueobject.Money, discountPercent decimal.Decimal) error {
	if err := validateLineFields(description, quantity, unitPrice, discountPercent); err != nil {
		return err
	}

	l.Description = description
	l.Quantity = quantity
	l.UnitPrice = unitPrice
	l.DiscountPercent = discountPercent
	l.UpdatedAt = time.Now()

	return nil
}

// Total returns the exact extended amount of the line:
// unit price, discounted, times quantity. No rounding happens here.
func (l *InvoiceLine) Total() valueobject.Money {
	return LineTotal(l.UnitPrice, l.Quantity, l.DiscountPercent)
}

func validateLineFields(description string, quantity decimal.Decimal, unitPrice valueobject.Money, discountPercent decimal.Decimal) error {
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Line description cannot be empty")
	}
	if len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Line description cannot exceed 500 characters")
	}
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Line quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Line unit price cannot be negative")
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(oneHundred) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Line discount must be between 0 and 100")
	}
	return nil
}
