package catalog

import (
	"strings"
	"time"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxProductCodeLength = 13

// Product represents an article (artículo) in the tenant catalog.
// SupplierID and TaxRateID are optional references: a product may exist
// without a preferred supplier or an assigned tax rate, and nil is the
// only representation of "not set".
type Product struct {
	shared.TenantEntity
	Code              string
	Description       string
	SupplierReference string
	SupplierID        *uuid.UUID
	TaxRateID         *uuid.UUID
	CostPrice         valueobject.Money
	SalePrice         valueobject.Money
	Stock             decimal.Decimal
}

// NewProduct creates a new product with zero prices and zero stock
func NewProduct(tenantID uuid.UUID, code, description string) (*Product, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if err := validateProductDescription(description); err != nil {
		return nil, err
	}

	return &Product{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Code:         strings.ToUpper(code),
		Description:  description,
		CostPrice:    valueobject.ZeroEUR(),
		SalePrice:    valueobject.ZeroEUR(),
		Stock:        decimal.Zero,
	}, nil
}

// NewProductWithPrices creates a new product with cost and sale prices
func NewProductWithPrices(tenantID uuid.UUID, code, description string, costPrice, salePrice valueobject.Money) (*Product, error) {
	product, err := NewProduct(tenantID, code, description)
	if err != nil {
		return nil, err
	}
	if err := product.UpdatePrices(costPrice, salePrice); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateCode updates the product code
func (p *Product) UpdateCode(code string) error {
	if err := validateProductCode(code); err != nil {
		return err
	}

	p.Code = strings.ToUpper(code)
	p.UpdatedAt = time.Now()

	return nil
}

// UpdateDescription updates the product description
func (p *Product) UpdateDescription(description string) error {
	if err := validateProductDescription(description); err != nil {
		return err
	}

	p.Description = description
	p.UpdatedAt = time.Now()

	return nil
}

// UpdatePrices updates the cost and sale prices
func (p *Product) UpdatePrices(costPrice, salePrice valueobject.Money) error {
	if costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}
	if salePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}

	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.UpdatedAt = time.Now()

	return nil
}

// AssignSupplier links the product to a preferred supplier, optionally
// with the code the supplier uses for this article
func (p *Product) AssignSupplier(supplierPartyID uuid.UUID, supplierReference string) error {
	if supplierPartyID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if len(supplierReference) > 50 {
		return shared.NewDomainError("INVALID_SUPPLIER_REFERENCE", "Supplier reference cannot exceed 50 characters")
	}

	id := supplierPartyID
	p.SupplierID = &id
	p.SupplierReference = supplierReference
	p.UpdatedAt = time.Now()

	return nil
}

// ClearSupplier detaches the product from its supplier
func (p *Product) ClearSupplier() {
	p.SupplierID = nil
	p.SupplierReference = ""
	p.UpdatedAt = time.Now()
}

// AssignTaxRate links the product to a tax rate
func (p *Product) AssignTaxRate(taxRateID uuid.UUID) error {
	if taxRateID == uuid.Nil {
		return shared.NewDomainError("INVALID_TAX_RATE", "Tax rate ID cannot be empty")
	}

	id := taxRateID
	p.TaxRateID = &id
	p.UpdatedAt = time.Now()

	return nil
}

// ClearTaxRate detaches the product from its tax rate
func (p *Product) ClearTaxRate() {
	p.TaxRateID = nil
	p.UpdatedAt = time.Now()
}

// AdjustStock applies a relative stock movement. The resulting level
// must not go negative.
func (p *Product) AdjustStock(delta decimal.Decimal) error {
	next := p.Stock.Add(delta)
	if next.IsNegative() {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Stock level cannot go negative")
	}

	p.Stock = next
	p.UpdatedAt = time.Now()

	return nil
}

// SetStock replaces the stock level outright, e.g. after a recount
func (p *Product) SetStock(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.NewDomainError("INVALID_STOCK", "Stock level cannot be negative")
	}

	p.Stock = quantity
	p.UpdatedAt = time.Now()

	return nil
}

// Margin returns the difference between sale and cost price
func (p *Product) Margin() (valueobject.Money, error) {
	return p.SalePrice.Subtract(p.CostPrice)
}

func validateProductCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > maxProductCodeLength {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 13 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Product code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateProductDescription(description string) error {
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Product description cannot be empty")
	}
	if len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Product description cannot exceed 500 characters")
	}
	return nil
}
