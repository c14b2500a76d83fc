package billing

import (
	"context"
	"time"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TaxRateRepository defines the interface for tax rate persistence
type TaxRateRepository interface {
	// Add inserts a new tax rate
	Add(ctx context.Context, rate *TaxRate) error

	// Update updates an existing tax rate
	Update(ctx context.Context, rate *TaxRate) error

	// Delete deletes a tax rate by its ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a tax rate by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*TaxRate, error)

	// FindAll finds all tax rates
	FindAll(ctx context.Context, filter shared.Filter) ([]TaxRate, error)
}

// InvoiceRepository defines the interface for invoice header persistence
type InvoiceRepository interface {
	// Add inserts a new invoice header
	Add(ctx context.Context, invoice *Invoice) error

	// Update updates an existing invoice header
	Update(ctx context.Context, invoice *Invoice) error

	// Delete deletes an invoice together with its lines, in one transaction
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an invoice by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByNumber finds an invoice by kind and number within a tenant
	FindByNumber(ctx context.Context, tenantID uuid.UUID, kind InvoiceKind, number string) (*Invoice, error)

	// FindAllForTenant finds all invoices of a kind for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, kind InvoiceKind, filter shared.Filter) ([]Invoice, error)

	// FindAllForParty finds all invoices addressed to a party
	FindAllForParty(ctx context.Context, tenantID, partyID uuid.UUID) ([]Invoice, error)

	// FindAllByPeriod finds all invoices of a kind issued inside [from, to]
	FindAllByPeriod(ctx context.Context, tenantID uuid.UUID, kind InvoiceKind, from, to time.Time) ([]Invoice, error)

	// ExistsByNumber checks if an invoice with the number exists for the
	// tenant and kind. Advisory; the unique index is the real guard.
	ExistsByNumber(ctx context.Context, tenantID uuid.UUID, kind InvoiceKind, number string) (bool, error)

	// NextNumber returns the next free number in the tenant's sequence
	// for the kind and year, formatted like "F-2026-00042"
	NextNumber(ctx context.Context, tenantID uuid.UUID, kind InvoiceKind, year int) (string, error)

	// SaveWithLines replaces the invoice header and its full line set in
	// one transaction
	SaveWithLines(ctx context.Context, invoice *Invoice, lines []InvoiceLine) error

	// CountForTenant counts invoices of a kind for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, kind InvoiceKind) (int64, error)
}

// InvoiceLineRepository defines the interface for invoice line persistence
type InvoiceLineRepository interface {
	// Add inserts a new line
	Add(ctx context.Context, line *InvoiceLine) error

	// Update updates an existing line
	Update(ctx context.Context, line *InvoiceLine) error

	// Delete deletes a line by its ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAllByInvoice finds all lines of an invoice in insertion order
	FindAllByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceLine, error)

	// DeleteAllByInvoice deletes every line of an invoice
	DeleteAllByInvoice(ctx context.Context, invoiceID uuid.UUID) error
}
