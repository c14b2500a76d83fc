package party

import (
	"strings"
	"time"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Client specializes a Party with a tenant-local client code.
// The client row is written in the same transaction as its party row;
// a client without a party (or vice versa) is never observable.
type Client struct {
	Party Party
	Code  string
}

// NewClient creates a new client with its backing party
func NewClient(tenantID uuid.UUID, code, name, taxID string) (*Client, error) {
	if err := validateSpecializationCode(code); err != nil {
		return nil, err
	}

	p, err := NewParty(tenantID, name, taxID)
	if err != nil {
		return nil, err
	}

	return &Client{
		Party: *p,
		Code:  strings.ToUpper(code),
	}, nil
}

// PartyID returns the backing party ID
func (c *Client) PartyID() uuid.UUID {
	return c.Party.ID
}

// TenantID returns the owning tenant ID
func (c *Client) TenantID() uuid.UUID {
	return c.Party.TenantID
}

// UpdateCode updates the tenant-local client code
func (c *Client) UpdateCode(code string) error {
	if err := validateSpecializationCode(code); err != nil {
		return err
	}

	c.Code = strings.ToUpper(code)
	c.Party.UpdatedAt = time.Now()

	return nil
}

func validateSpecializationCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
