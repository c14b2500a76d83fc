package billing

import (
	"strings"
	"time"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// InvoiceKind distinguishes sales invoices (issued to clients) from
// purchase invoices (received from suppliers). Numbering sequences are
// independent per kind.
type InvoiceKind string

const (
	InvoiceKindSale     InvoiceKind = "sale"
	InvoiceKindPurchase InvoiceKind = "purchase"
)

// IsValid checks if the kind is a valid InvoiceKind
func (k InvoiceKind) IsValid() bool {
	return k == InvoiceKindSale || k == InvoiceKindPurchase
}

// String returns the string representation of InvoiceKind
func (k InvoiceKind) String() string {
	return string(k)
}

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusVoided  InvoiceStatus = "voided"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusVoided:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can move to the target status.
// Voided is terminal; a paid invoice can only be voided.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	switch s {
	case InvoiceStatusPending:
		return target == InvoiceStatusPaid || target == InvoiceStatusVoided
	case InvoiceStatusPaid:
		return target == InvoiceStatusVoided
	}
	return false
}

// Invoice is the header record (factura). Its three totals are stored
// denormalized so listings never recompute over lines; ApplyTotals and
// SetManualTotals are the only writers and both keep
// GrandTotal = TaxBase + TaxTotal.
type Invoice struct {
	shared.TenantEntity
	Kind       InvoiceKind
	Number     string
	IssueDate  time.Time
	PartyID    uuid.UUID
	Concept    string
	TaxBase    valueobject.Money
	TaxTotal   valueobject.Money
	GrandTotal valueobject.Money
	Status     InvoiceStatus
	Notes      string
}

// NewInvoice creates a pending invoice with zero totals
func NewInvoice(tenantID uuid.UUID, kind InvoiceKind, number string, issueDate time.Time, partyID uuid.UUID) (*Invoice, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Invoice kind must be 'sale' or 'purchase'")
	}
	if err := validateInvoiceNumber(number); err != nil {
		return nil, err
	}
	if issueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_ISSUE_DATE", "Issue date cannot be empty")
	}
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Party ID cannot be empty")
	}

	return &Invoice{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Kind:         kind,
		Number:       strings.ToUpper(number),
		IssueDate:    issueDate,
		PartyID:      partyID,
		TaxBase:      valueobject.ZeroEUR(),
		TaxTotal:     valueobject.ZeroEUR(),
		GrandTotal:   valueobject.ZeroEUR(),
		Status:       InvoiceStatusPending,
	}, nil
}

// SetConcept updates the invoice concept text
func (i *Invoice) SetConcept(concept string) error {
	if len(concept) > 500 {
		return shared.NewDomainError("INVALID_CONCEPT", "Concept cannot exceed 500 characters")
	}

	i.Concept = concept
	i.UpdatedAt = time.Now()

	return nil
}

// SetNotes updates the free-form notes
func (i *Invoice) SetNotes(notes string) error {
	if len(notes) > 2000 {
		return shared.NewDomainError("INVALID_NOTES", "Notes cannot exceed 2000 characters")
	}

	i.Notes = notes
	i.UpdatedAt = time.Now()

	return nil
}

// Reschedule changes the issue date
func (i *Invoice) Reschedule(issueDate time.Time) error {
	if issueDate.IsZero() {
		return shared.NewDomainError("INVALID_ISSUE_DATE", "Issue date cannot be empty")
	}

	i.IssueDate = issueDate
	i.UpdatedAt = time.Now()

	return nil
}

// ApplyTotals stores computed totals on the header
func (i *Invoice) ApplyTotals(totals Totals) error {
	if i.Status == InvoiceStatusVoided {
		return shared.NewDomainError("INVOICE_VOIDED", "Cannot modify a voided invoice")
	}

	i.TaxBase = totals.TaxBase
	i.TaxTotal = totals.TaxTotal
	i.GrandTotal = totals.GrandTotal
	i.UpdatedAt = time.Now()

	return nil
}

// SetManualTotals stores totals entered by hand, for invoices carried
// without lines. The grand total is derived, never taken from input.
func (i *Invoice) SetManualTotals(taxBase, taxTotal valueobject.Money) error {
	if i.Status == InvoiceStatusVoided {
		return shared.NewDomainError("INVOICE_VOIDED", "Cannot modify a voided invoice")
	}
	if taxBase.IsNegative() {
		return shared.NewDomainError("INVALID_TOTALS", "Tax base cannot be negative")
	}
	if taxTotal.IsNegative() {
		return shared.NewDomainError("INVALID_TOTALS", "Tax total cannot be negative")
	}

	grand, err := taxBase.Add(taxTotal)
	if err != nil {
		return err
	}

	i.TaxBase = taxBase
	i.TaxTotal = taxTotal
	i.GrandTotal = grand
	i.UpdatedAt = time.Now()

	return nil
}

// MarkPaid transitions the invoice to paid
func (i *Invoice) MarkPaid() error {
	if !i.Status.CanTransitionTo(InvoiceStatusPaid) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Cannot mark a "+i.Status.String()+" invoice as paid")
	}

	i.Status = InvoiceStatusPaid
	i.UpdatedAt = time.Now()

	return nil
}

// Void transitions the invoice to voided. Voided invoices keep their
// number; the sequence never reuses it.
func (i *Invoice) Void() error {
	if !i.Status.CanTransitionTo(InvoiceStatusVoided) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Cannot void a "+i.Status.String()+" invoice")
	}

	i.Status = InvoiceStatusVoided
	i.UpdatedAt = time.Now()

	return nil
}

func validateInvoiceNumber(number string) error {
	if number == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	if len(number) > 50 {
		return shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot exceed 50 characters")
	}
	return nil
}
