package models

import (
	"time"

	"github.com/facturante/backend/internal/domain/billing"
	"github.com/facturante/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRateModel is the GORM model for tax rates
type TaxRateModel struct {
	BaseModel
	Name    string          `gorm:"type:varchar(100);not null"`
	Percent decimal.Decimal `gorm:"type:decimal(5,2);not null"`
}

// TableName returns the table name for GORM
func (TaxRateModel) TableName() string {
	return "tax_rates"
}

// ToDomain converts the model to a domain TaxRate
func (m *TaxRateModel) ToDomain() *billing.TaxRate {
	return &billing.TaxRate{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Percent:    m.Percent,
	}
}

// TaxRateModelFromDomain converts a domain TaxRate to its model
func TaxRateModelFromDomain(t *billing.TaxRate) *TaxRateModel {
	m := &TaxRateModel{
		Name:    t.Name,
		Percent: t.Percent,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

// InvoiceModel is the GORM model for invoice headers. The number is
// unique per tenant and kind; sale and purchase sequences never collide.
type InvoiceModel struct {
	BaseModel
	TenantID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_tenant_kind_number,priority:1"`
	Kind       string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_invoices_tenant_kind_number,priority:2"`
	Number     string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoices_tenant_kind_number,priority:3"`
	IssueDate  time.Time       `gorm:"not null;index"`
	PartyID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Concept    string          `gorm:"type:varchar(500)"`
	TaxBase    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TaxTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	GrandTotal decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status     string          `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes      string          `gorm:"type:varchar(2000)"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the model to a domain Invoice
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		TenantEntity: tenantEntity(m.BaseModel, m.TenantID),
		Kind:         billing.InvoiceKind(m.Kind),
		Number:       m.Number,
		IssueDate:    m.IssueDate,
		PartyID:      m.PartyID,
		Concept:      m.Concept,
		TaxBase:      valueobject.NewMoneyEUR(m.TaxBase),
		TaxTotal:     valueobject.NewMoneyEUR(m.TaxTotal),
		GrandTotal:   valueobject.NewMoneyEUR(m.GrandTotal),
		Status:       billing.InvoiceStatus(m.Status),
		Notes:        m.Notes,
	}
}

// InvoiceModelFromDomain converts a domain Invoice to its model
func InvoiceModelFromDomain(i *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		Kind:       i.Kind.String(),
		Number:     i.Number,
		IssueDate:  i.IssueDate,
		PartyID:    i.PartyID,
		Concept:    i.Concept,
		TaxBase:    i.TaxBase.Amount(),
		TaxTotal:   i.TaxTotal.Amount(),
		GrandTotal: i.GrandTotal.Amount(),
		Status:     i.Status.String(),
		Notes:      i.Notes,
	}
	m.FromDomainBaseEntity(i.BaseEntity)
	m.TenantID = i.TenantID
	return m
}

// InvoiceLineModel is the GORM model for invoice lines
type InvoiceLineModel struct {
	BaseModel
	InvoiceID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       *uuid.UUID      `gorm:"type:uuid;index"`
	Description     string          `gorm:"type:varchar(500);not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (InvoiceLineModel) TableName() string {
	return "invoice_lines"
}

// ToDomain converts the model to a domain InvoiceLine
func (m *InvoiceLineModel) ToDomain() *billing.InvoiceLine {
	return &billing.InvoiceLine{
		BaseEntity:      m.BaseModel.ToDomain(),
		InvoiceID:       m.InvoiceID,
		ProductID:       m.ProductID,
		Description:     m.Description,
		Quantity:        m.Quantity,
		UnitPrice:       valueobject.NewMoneyEUR(m.UnitPrice),
		DiscountPercent: m.DiscountPercent,
	}
}

// InvoiceLineModelFromDomain converts a domain InvoiceLine to its model
func InvoiceLineModelFromDomain(l *billing.InvoiceLine) *InvoiceLineModel {
	m := &InvoiceLineModel{
		InvoiceID:       l.InvoiceID,
		ProductID:       l.ProductID,
		Description:     l.Description,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice.Amount(),
		DiscountPercent: l.DiscountPercent,
	}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m
}
