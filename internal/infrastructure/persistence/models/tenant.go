package models

import (
	"github.com/facturante/backend/internal/domain/tenant"
)

// CompanyModel is the GORM model for companies (tenants)
type CompanyModel struct {
	BaseModel
	Name  string `gorm:"type:varchar(200);not null"`
	TaxID string `gorm:"type:varchar(20);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the model to a domain Company
func (m *CompanyModel) ToDomain() *tenant.Company {
	return &tenant.Company{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		TaxID:      m.TaxID,
	}
}

// CompanyModelFromDomain converts a domain Company to its model
func CompanyModelFromDomain(c *tenant.Company) *CompanyModel {
	m := &CompanyModel{
		Name:  c.Name,
		TaxID: c.TaxID,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}
