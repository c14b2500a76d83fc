package party

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Supplier specializes a Party with a tenant-local supplier code.
// Structurally identical to Client; the two differ only in which
// specialization table they populate.
type Supplier struct {
	Party Party
	Code  string
}

// NewSupplier creates a new supplier with its backing party
func NewSupplier(tenantID uuid.UUID, code, name, taxID string) (*Supplier, error) {
	if err := validateSpecializationCode(code); err != nil {
		return nil, err
	}

	p, err := NewParty(tenantID, name, taxID)
	if err != nil {
		return nil, err
	}

	return &Supplier{
		Party: *p,
		Code:  strings.ToUpper(code),
	}, nil
}

// PartyID returns the backing party ID
func (s *Supplier) PartyID() uuid.UUID {
	return s.Party.ID
}

// TenantID returns the owning tenant ID
func (s *Supplier) TenantID() uuid.UUID {
	return s.Party.TenantID
}

// UpdateCode updates the tenant-local supplier code
func (s *Supplier) UpdateCode(code string) error {
	if err := validateSpecializationCode(code); err != nil {
		return err
	}

	s.Code = strings.ToUpper(code)
	s.Party.UpdatedAt = time.Now()

	return nil
}
