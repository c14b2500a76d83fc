package models

import (
	"github.com/facturante/backend/internal/domain/party"
	"github.com/google/uuid"
)

// PartyModel is the GORM model for the shared party base table.
// Clients and suppliers specialize it through their own tables; the
// constraints there point back at this one with ON DELETE CASCADE.
type PartyModel struct {
	BaseModel
	TenantID uuid.UUID `gorm:"type:uuid;not null;index:idx_parties_tenant_tax_id,priority:1"`
	Name     string    `gorm:"type:varchar(200);not null"`
	TaxID    string    `gorm:"type:varchar(20);not null;index:idx_parties_tenant_tax_id,priority:2"`
	Email    string    `gorm:"type:varchar(200)"`
	Phone    string    `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (PartyModel) TableName() string {
	return "parties"
}

// ToDomain converts the model to a domain Party
func (m *PartyModel) ToDomain() *party.Party {
	return &party.Party{
		TenantEntity: tenantEntity(m.BaseModel, m.TenantID),
		Name:         m.Name,
		TaxID:        m.TaxID,
		Email:        m.Email,
		Phone:        m.Phone,
	}
}

// PartyModelFromDomain converts a domain Party to its model
func PartyModelFromDomain(p *party.Party) *PartyModel {
	m := &PartyModel{
		Name:  p.Name,
		TaxID: p.TaxID,
		Email: p.Email,
		Phone: p.Phone,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	m.TenantID = p.TenantID
	return m
}

// ClientModel is the GORM model for the client specialization table.
// PartyID is both primary key and foreign key: one client row per party.
type ClientModel struct {
	PartyID  uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_clients_tenant_code,priority:1"`
	Code     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_clients_tenant_code,priority:2"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain combines the specialization row with its party row
func (m *ClientModel) ToDomain(p *PartyModel) *party.Client {
	return &party.Client{
		Party: *p.ToDomain(),
		Code:  m.Code,
	}
}

// ClientModelFromDomain converts a domain Client to its model
func ClientModelFromDomain(c *party.Client) *ClientModel {
	return &ClientModel{
		PartyID:  c.PartyID(),
		TenantID: c.TenantID(),
		Code:     c.Code,
	}
}

// SupplierModel is the GORM model for the supplier specialization table
type SupplierModel struct {
	PartyID  uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_suppliers_tenant_code,priority:1"`
	Code     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_suppliers_tenant_code,priority:2"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain combines the specialization row with its party row
func (m *SupplierModel) ToDomain(p *PartyModel) *party.Supplier {
	return &party.Supplier{
		Party: *p.ToDomain(),
		Code:  m.Code,
	}
}

// SupplierModelFromDomain converts a domain Supplier to its model
func SupplierModelFromDomain(s *party.Supplier) *SupplierModel {
	return &SupplierModel{
		PartyID:  s.PartyID(),
		TenantID: s.TenantID(),
		Code:     s.Code,
	}
}

// AddressModel is the GORM model for party addresses. Tenant scope is
// inherited from the owning party, so there is no tenant column here.
type AddressModel struct {
	BaseModel
	PartyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Label      string    `gorm:"type:varchar(20);not null"`
	Street     string    `gorm:"type:varchar(500)"`
	PostalCode string    `gorm:"type:varchar(20)"`
	City       string    `gorm:"type:varchar(100)"`
	Province   string    `gorm:"type:varchar(100)"`
	Country    string    `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the model to a domain Address
func (m *AddressModel) ToDomain() *party.Address {
	return &party.Address{
		BaseEntity: m.BaseModel.ToDomain(),
		PartyID:    m.PartyID,
		Label:      party.AddressLabel(m.Label),
		Street:     m.Street,
		PostalCode: m.PostalCode,
		City:       m.City,
		Province:   m.Province,
		Country:    m.Country,
	}
}

// AddressModelFromDomain converts a domain Address to its model
func AddressModelFromDomain(a *party.Address) *AddressModel {
	m := &AddressModel{
		PartyID:    a.PartyID,
		Label:      a.Label.String(),
		Street:     a.Street,
		PostalCode: a.PostalCode,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}
