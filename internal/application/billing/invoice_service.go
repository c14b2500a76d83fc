package billing

import (
	"context"
	"time"

	"github.com/facturante/backend/internal/domain/billing"
	"github.com/facturante/backend/internal/domain/party"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/domain/shared/valueobject"
	"github.com/facturante/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvoiceService handles invoice-related business operations
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	lineRepo    billing.InvoiceLineRepository
	taxRateRepo billing.TaxRateRepository
	partyRepo   party.PartyRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	lineRepo billing.InvoiceLineRepository,
	taxRateRepo billing.TaxRateRepository,
	partyRepo party.PartyRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		lineRepo:    lineRepo,
		taxRateRepo: taxRateRepo,
		partyRepo:   partyRepo,
	}
}

// Create creates a pending invoice header with zero totals. When no
// number is given, the next free number of the tenant's sequence for
// the kind and issue year is drawn; the (tenant, kind, number) unique
// index catches two writers drawing the same one.
func (s *InvoiceService) Create(ctx context.Context, tenantID uuid.UUID, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if _, err := s.partyRepo.FindByID(ctx, req.PartyID); err != nil {
		return nil, err
	}

	kind := billing.InvoiceKind(req.Kind)
	number := req.Number
	if number == "" {
		var err error
		number, err = s.invoiceRepo.NextNumber(ctx, tenantID, kind, req.IssueDate.Year())
		if err != nil {
			return nil, err
		}
	} else {
		exists, err := s.invoiceRepo.ExistsByNumber(ctx, tenantID, kind, number)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this number already exists")
		}
	}

	invoice, err := billing.NewInvoice(tenantID, kind, number, req.IssueDate, req.PartyID)
	if err != nil {
		return nil, err
	}

	if req.Concept != "" {
		if err := invoice.SetConcept(req.Concept); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		if err := invoice.SetNotes(req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Add(ctx, invoice); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Invoice created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("kind", invoice.Kind.String()),
		zap.String("number", invoice.Number),
	)

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByNumber retrieves an invoice by kind and number within a tenant
func (s *InvoiceService) GetByNumber(ctx context.Context, tenantID uuid.UUID, kind string, number string) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByNumber(ctx, tenantID, billing.InvoiceKind(kind), number)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices of a kind with filtering and pagination
func (s *InvoiceService) List(ctx context.Context, tenantID uuid.UUID, kind string, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
	invoiceKind := billing.InvoiceKind(kind)

	invoices, err := s.invoiceRepo.FindAllForTenant(ctx, tenantID, invoiceKind, filter.toDomainFilter())
	if err != nil {
		return nil, 0, err
	}

	total, err := s.invoiceRepo.CountForTenant(ctx, tenantID, invoiceKind)
	if err != nil {
		return nil, 0, err
	}

	return ToInvoiceResponses(invoices), total, nil
}

// ListForParty retrieves all invoices addressed to a party
func (s *InvoiceService) ListForParty(ctx context.Context, tenantID, partyID uuid.UUID) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAllForParty(ctx, tenantID, partyID)
	if err != nil {
		return nil, err
	}

	return ToInvoiceResponses(invoices), nil
}

// ListByPeriod retrieves all invoices of a kind issued inside [from, to]
func (s *InvoiceService) ListByPeriod(ctx context.Context, tenantID uuid.UUID, kind string, from, to time.Time) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAllByPeriod(ctx, tenantID, billing.InvoiceKind(kind), from, to)
	if err != nil {
		return nil, err
	}

	return ToInvoiceResponses(invoices), nil
}

// Update updates header fields of an invoice
func (s *InvoiceService) Update(ctx context.Context, invoiceID uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.IssueDate != nil {
		if err := invoice.Reschedule(*req.IssueDate); err != nil {
			return nil, err
		}
	}
	if req.Concept != nil {
		if err := invoice.SetConcept(*req.Concept); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		if err := invoice.SetNotes(*req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// SetLines replaces the full line set of an invoice, recomputes totals
// at the given tax rate and persists header and lines in one
// transaction.
func (s *InvoiceService) SetLines(ctx context.Context, invoiceID, taxRateID uuid.UUID, inputs []LineInput) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	rate, err := s.taxRateRepo.FindByID(ctx, taxRateID)
	if err != nil {
		return nil, err
	}

	lines := make([]billing.InvoiceLine, 0, len(inputs))
	for _, input := range inputs {
		line, err := billing.NewInvoiceLine(invoice.ID, input.Description, input.Quantity,
			valueobject.NewMoneyEUR(input.UnitPrice), input.DiscountPercent)
		if err != nil {
			return nil, err
		}
		if input.ProductID != nil {
			if err := line.LinkProduct(*input.ProductID); err != nil {
				return nil, err
			}
		}
		lines = append(lines, *line)
	}

	totals, err := billing.CalculateTotals(lines, rate.Fraction())
	if err != nil {
		return nil, err
	}
	if err := invoice.ApplyTotals(totals); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SaveWithLines(ctx, invoice, lines); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Invoice lines replaced",
		zap.String("invoice_id", invoice.ID.String()),
		zap.Int("line_count", len(lines)),
		zap.String("grand_total", invoice.GrandTotal.StringFixed(2)),
	)

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetLines retrieves the lines of an invoice in insertion order
func (s *InvoiceService) GetLines(ctx context.Context, invoiceID uuid.UUID) ([]LineResponse, error) {
	lines, err := s.lineRepo.FindAllByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	return ToLineResponses(lines), nil
}

// RecalculateTotals recomputes totals from the stored lines at the given
// tax rate and updates the header
func (s *InvoiceService) RecalculateTotals(ctx context.Context, invoiceID, taxRateID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	rate, err := s.taxRateRepo.FindByID(ctx, taxRateID)
	if err != nil {
		return nil, err
	}

	lines, err := s.lineRepo.FindAllByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	totals, err := billing.CalculateTotals(lines, rate.Fraction())
	if err != nil {
		return nil, err
	}
	if err := invoice.ApplyTotals(totals); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// SetManualTotals stores hand-entered totals on an invoice carried
// without lines
func (s *InvoiceService) SetManualTotals(ctx context.Context, invoiceID uuid.UUID, req ManualTotalsRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.SetManualTotals(valueobject.NewMoneyEUR(req.TaxBase), valueobject.NewMoneyEUR(req.TaxTotal)); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// MarkPaid transitions an invoice to paid
func (s *InvoiceService) MarkPaid(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.MarkPaid(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Void transitions an invoice to voided. The number stays burned; the
// sequence never hands it out again.
func (s *InvoiceService) Void(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.Void(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Invoice voided",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("number", invoice.Number),
	)

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete deletes an invoice together with its lines
func (s *InvoiceService) Delete(ctx context.Context, invoiceID uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, invoiceID)
}

// toDomainFilter applies list defaults and converts to the shared filter
func (f InvoiceListFilter) toDomainFilter() shared.Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	if f.OrderBy == "" {
		f.OrderBy = "issue_date"
	}
	if f.OrderDir == "" {
		f.OrderDir = "desc"
	}
	return shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
	}
}
