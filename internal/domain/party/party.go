package party

import (
	"regexp"
	"strings"
	"time"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Party is the base record (entidad) shared by clients and suppliers.
// It owns identity and common contact fields; the specialization row
// (client or supplier code) and the addresses hang off its ID and are
// deleted with it.
type Party struct {
	shared.TenantEntity
	Name  string
	TaxID string // NIF, intended-unique within a tenant (advisory, see PartyRepository.ExistsByTaxID)
	Email string
	Phone string
}

// NewParty creates a new party with required fields
func NewParty(tenantID uuid.UUID, name, taxID string) (*Party, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if err := validatePartyName(name); err != nil {
		return nil, err
	}
	if err := validatePartyTaxID(taxID); err != nil {
		return nil, err
	}

	return &Party{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		TaxID:        strings.ToUpper(taxID),
	}, nil
}

// Rename updates the party name
func (p *Party) Rename(name string) error {
	if err := validatePartyName(name); err != nil {
		return err
	}

	p.Name = name
	p.UpdatedAt = time.Now()

	return nil
}

// SetTaxID updates the party tax identification number
func (p *Party) SetTaxID(taxID string) error {
	if err := validatePartyTaxID(taxID); err != nil {
		return err
	}

	p.TaxID = strings.ToUpper(taxID)
	p.UpdatedAt = time.Now()

	return nil
}

// SetContact sets the party contact information
func (p *Party) SetContact(email, phone string) error {
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}

	p.Email = email
	p.Phone = phone
	p.UpdatedAt = time.Now()

	return nil
}

func validatePartyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Party name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Party name cannot exceed 200 characters")
	}
	return nil
}

func validatePartyTaxID(taxID string) error {
	if taxID == "" {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID cannot be empty")
	}
	if len(taxID) > 20 {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID cannot exceed 20 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
