package party

import (
	"time"

	"github.com/facturante/backend/internal/domain/party"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// =============================================================================
// Client / Supplier DTOs
// =============================================================================

// CreateSpecializationRequest creates a client or a supplier; both carry
// the same fields, only the target store differs
type CreateSpecializationRequest struct {
	Code  string `json:"code" binding:"required,min=1,max=50"`
	Name  string `json:"name" binding:"required,min=1,max=200"`
	TaxID string `json:"tax_id" binding:"required,min=1,max=20"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
	Phone string `json:"phone" binding:"max=50"`
}

// UpdateSpecializationRequest updates a client or supplier. Nil fields
// are left untouched.
type UpdateSpecializationRequest struct {
	Code  *string `json:"code" binding:"omitempty,min=1,max=50"`
	Name  *string `json:"name" binding:"omitempty,min=1,max=200"`
	TaxID *string `json:"tax_id" binding:"omitempty,min=1,max=20"`
	Email *string `json:"email" binding:"omitempty,max=200"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}

// SpecializationResponse represents a client or supplier in API responses
type SpecializationResponse struct {
	PartyID   uuid.UUID `json:"party_id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListFilter represents filter options for client/supplier lists
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToClientResponse converts a domain Client to its response
func ToClientResponse(c *party.Client) SpecializationResponse {
	return SpecializationResponse{
		PartyID:   c.PartyID(),
		TenantID:  c.TenantID(),
		Code:      c.Code,
		Name:      c.Party.Name,
		TaxID:     c.Party.TaxID,
		Email:     c.Party.Email,
		Phone:     c.Party.Phone,
		CreatedAt: c.Party.CreatedAt,
		UpdatedAt: c.Party.UpdatedAt,
	}
}

// ToClientResponses converts a slice of domain Clients
func ToClientResponses(clients []party.Client) []SpecializationResponse {
	responses := make([]SpecializationResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}

// ToSupplierResponse converts a domain Supplier to its response
func ToSupplierResponse(s *party.Supplier) SpecializationResponse {
	return SpecializationResponse{
		PartyID:   s.PartyID(),
		TenantID:  s.TenantID(),
		Code:      s.Code,
		Name:      s.Party.Name,
		TaxID:     s.Party.TaxID,
		Email:     s.Party.Email,
		Phone:     s.Party.Phone,
		CreatedAt: s.Party.CreatedAt,
		UpdatedAt: s.Party.UpdatedAt,
	}
}

// ToSupplierResponses converts a slice of domain Suppliers
func ToSupplierResponses(suppliers []party.Supplier) []SpecializationResponse {
	responses := make([]SpecializationResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}

// =============================================================================
// Address DTOs
// =============================================================================

// CreateAddressRequest represents a request to create an address
type CreateAddressRequest struct {
	PartyID    uuid.UUID `json:"party_id" binding:"required"`
	Label      string    `json:"label" binding:"required,oneof=fiscal shipping other"`
	Street     string    `json:"street" binding:"max=500"`
	PostalCode string    `json:"postal_code" binding:"max=20"`
	City       string    `json:"city" binding:"max=100"`
	Province   string    `json:"province" binding:"max=100"`
	Country    string    `json:"country" binding:"max=100"`
}

// UpdateAddressRequest represents a request to update an address
type UpdateAddressRequest struct {
	Label      *string `json:"label" binding:"omitempty,oneof=fiscal shipping other"`
	Street     *string `json:"street" binding:"omitempty,max=500"`
	PostalCode *string `json:"postal_code" binding:"omitempty,max=20"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	Province   *string `json:"province" binding:"omitempty,max=100"`
	Country    *string `json:"country" binding:"omitempty,max=100"`
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	PartyID    uuid.UUID `json:"party_id"`
	Label      string    `json:"label"`
	Street     string    `json:"street"`
	PostalCode string    `json:"postal_code"`
	City       string    `json:"city"`
	Province   string    `json:"province"`
	Country    string    `json:"country"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToAddressResponse converts a domain Address to its response
func ToAddressResponse(a *party.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		PartyID:    a.PartyID,
		Label:      a.Label.String(),
		Street:     a.Street,
		PostalCode: a.PostalCode,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// ToAddressResponses converts a slice of domain Addresses
func ToAddressResponses(addresses []party.Address) []AddressResponse {
	responses := make([]AddressResponse, len(addresses))
	for i := range addresses {
		responses[i] = ToAddressResponse(&addresses[i])
	}
	return responses
}

// toDomainFilter applies list defaults and converts to the shared filter
func (f ListFilter) toDomainFilter() shared.Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	if f.OrderBy == "" {
		f.OrderBy = "name"
	}
	if f.OrderDir == "" {
		f.OrderDir = "asc"
	}
	return shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
	}
}
