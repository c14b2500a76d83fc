package models

import (
	"github.com/facturante/backend/internal/domain/catalog"
	"github.com/facturante/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM model for products
type ProductModel struct {
	BaseModel
	TenantID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_products_tenant_code,priority:1"`
	Code              string          `gorm:"type:varchar(13);not null;uniqueIndex:idx_products_tenant_code,priority:2"`
	Description       string          `gorm:"type:varchar(500);not null"`
	SupplierReference string          `gorm:"type:varchar(50)"`
	SupplierID        *uuid.UUID      `gorm:"type:uuid;index"`
	TaxRateID         *uuid.UUID      `gorm:"type:uuid;index"`
	CostPrice         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SalePrice         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Stock             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		TenantEntity:      tenantEntity(m.BaseModel, m.TenantID),
		Code:              m.Code,
		Description:       m.Description,
		SupplierReference: m.SupplierReference,
		SupplierID:        m.SupplierID,
		TaxRateID:         m.TaxRateID,
		CostPrice:         valueobject.NewMoneyEUR(m.CostPrice),
		SalePrice:         valueobject.NewMoneyEUR(m.SalePrice),
		Stock:             m.Stock,
	}
}

// ProductModelFromDomain converts a domain Product to its model
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{
		Code:              p.Code,
		Description:       p.Description,
		SupplierReference: p.SupplierReference,
		SupplierID:        p.SupplierID,
		TaxRateID:         p.TaxRateID,
		CostPrice:         p.CostPrice.Amount(),
		SalePrice:         p.SalePrice.Amount(),
		Stock:             p.Stock,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	m.TenantID = p.TenantID
	return m
}
