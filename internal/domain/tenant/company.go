package tenant

import (
	"strings"
	"time"

	"github.com/facturante/backend/internal/domain/shared"
)

// Company represents an owning company (empresa). Every party, product
// and invoice in the system is scoped to exactly one company, identified
// by its ID acting as the tenant ID.
type Company struct {
	shared.BaseEntity
	Name  string
	TaxID string
}

// NewCompany creates a new company with required fields
func NewCompany(name, taxID string) (*Company, error) {
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}
	if err := validateCompanyTaxID(taxID); err != nil {
		return nil, err
	}

	return &Company{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		TaxID:      strings.ToUpper(taxID),
	}, nil
}

// Rename updates the company name
func (c *Company) Rename(name string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}

	c.Name = name
	c.UpdatedAt = time.Now()

	return nil
}

// SetTaxID updates the company tax identification number
func (c *Company) SetTaxID(taxID string) error {
	if err := validateCompanyTaxID(taxID); err != nil {
		return err
	}

	c.TaxID = strings.ToUpper(taxID)
	c.UpdatedAt = time.Now()

	return nil
}

func validateCompanyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}

func validateCompanyTaxID(taxID string) error {
	if taxID == "" {
		return shared.NewDomainError("INVALID_TAX_ID", "Company tax ID cannot be empty")
	}
	if len(taxID) > 20 {
		return shared.NewDomainError("INVALID_TAX_ID", "Company tax ID cannot exceed 20 characters")
	}
	return nil
}
