package billing

import (
	"time"

	"github.com/facturante/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Invoice DTOs
// =============================================================================

// CreateInvoiceRequest represents a request to create an invoice header.
// Number is optional: when empty the next free number of the tenant's
// sequence for the kind and issue year is drawn.
type CreateInvoiceRequest struct {
	Kind      string    `json:"kind" binding:"required,oneof=sale purchase"`
	Number    string    `json:"number" binding:"max=50"`
	IssueDate time.Time `json:"issue_date" binding:"required"`
	PartyID   uuid.UUID `json:"party_id" binding:"required"`
	Concept   string    `json:"concept" binding:"max=500"`
	Notes     string    `json:"notes" binding:"max=2000"`
}

// UpdateInvoiceRequest represents a request to update header fields.
// Totals and status move through their own operations.
type UpdateInvoiceRequest struct {
	IssueDate *time.Time `json:"issue_date"`
	Concept   *string    `json:"concept" binding:"omitempty,max=500"`
	Notes     *string    `json:"notes" binding:"omitempty,max=2000"`
}

// LineInput is one position of a SetLines call
type LineInput struct {
	ProductID       *uuid.UUID      `json:"product_id"`
	Description     string          `json:"description" binding:"required,max=500"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// ManualTotalsRequest sets totals by hand for invoices carried without
// lines. The grand total is always derived, never accepted as input.
type ManualTotalsRequest struct {
	TaxBase  decimal.Decimal `json:"tax_base"`
	TaxTotal decimal.Decimal `json:"tax_total"`
}

// InvoiceResponse represents an invoice in API responses. Monetary
// amounts are rendered with two decimal places; the stored values keep
// full precision.
type InvoiceResponse struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	Kind       string    `json:"kind"`
	Number     string    `json:"number"`
	IssueDate  time.Time `json:"issue_date"`
	PartyID    uuid.UUID `json:"party_id"`
	Concept    string    `json:"concept"`
	TaxBase    string    `json:"tax_base"`
	TaxTotal   string    `json:"tax_total"`
	GrandTotal string    `json:"grand_total"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LineResponse represents an invoice line in API responses
type LineResponse struct {
	ID              uuid.UUID       `json:"id"`
	InvoiceID       uuid.UUID       `json:"invoice_id"`
	ProductID       *uuid.UUID      `json:"product_id"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       string          `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Total           string          `json:"total"`
}

// InvoiceListFilter represents filter options for invoice lists
type InvoiceListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToInvoiceResponse converts a domain Invoice to its response
func ToInvoiceResponse(i *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         i.ID,
		TenantID:   i.TenantID,
		Kind:       i.Kind.String(),
		Number:     i.Number,
		IssueDate:  i.IssueDate,
		PartyID:    i.PartyID,
		Concept:    i.Concept,
		TaxBase:    i.TaxBase.StringFixed(2),
		TaxTotal:   i.TaxTotal.StringFixed(2),
		GrandTotal: i.GrandTotal.StringFixed(2),
		Status:     i.Status.String(),
		Notes:      i.Notes,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain Invoices
func ToInvoiceResponses(invoices []billing.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}

// ToLineResponse converts a domain InvoiceLine to its response
func ToLineResponse(l *billing.InvoiceLine) LineResponse {
	return LineResponse{
		ID:              l.ID,
		InvoiceID:       l.InvoiceID,
		ProductID:       l.ProductID,
		Description:     l.Description,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice.StringFixed(2),
		DiscountPercent: l.DiscountPercent,
		Total:           l.Total().StringFixed(2),
	}
}

// ToLineResponses converts a slice of domain InvoiceLines
func ToLineResponses(lines []billing.InvoiceLine) []LineResponse {
	responses := make([]LineResponse, len(lines))
	for i := range lines {
		responses[i] = ToLineResponse(&lines[i])
	}
	return responses
}

// =============================================================================
// Tax rate DTOs
// =============================================================================

// CreateTaxRateRequest represents a request to create a tax rate
type CreateTaxRateRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=100"`
	Percent decimal.Decimal `json:"percent"`
}

// UpdateTaxRateRequest represents a request to update a tax rate
type UpdateTaxRateRequest struct {
	Name    *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Percent *decimal.Decimal `json:"percent"`
}

// TaxRateResponse represents a tax rate in API responses
type TaxRateResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Percent   decimal.Decimal `json:"percent"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToTaxRateResponse converts a domain TaxRate to its response
func ToTaxRateResponse(t *billing.TaxRate) TaxRateResponse {
	return TaxRateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Percent:   t.Percent,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTaxRateResponses converts a slice of domain TaxRates
func ToTaxRateResponses(rates []billing.TaxRate) []TaxRateResponse {
	responses := make([]TaxRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToTaxRateResponse(&rates[i])
	}
	return responses
}
