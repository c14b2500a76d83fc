package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/facturante/backend/internal/domain/billing"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Add inserts a new invoice header
func (r *GormInvoiceRepository) Add(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return translateError(r.db.WithContext(ctx).Create(model).Error)
}

// Update updates an existing invoice header
func (r *GormInvoiceRepository) Update(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	result := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Where("id = ?", model.ID).
		Select("number", "issue_date", "party_id", "concept",
			"tax_base", "tax_total", "grand_total", "status", "notes", "updated_at").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes an invoice together with its lines in one transaction
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.InvoiceLineModel{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.InvoiceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	return translateError(err)
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds an invoice by kind and number within a tenant
func (r *GormInvoiceRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, kind billing.InvoiceKind, number string) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND kind = ? AND number = ?", tenantID, kind.String(), strings.ToUpper(number)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all invoices of a kind for a tenant
func (r *GormInvoiceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, kind billing.InvoiceKind, filter shared.Filter) ([]billing.Invoice, error) {
	query := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Where("tenant_id = ? AND kind = ?", tenantID, kind.String())
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("number ILIKE ? OR concept ILIKE ?", pattern, pattern)
	}
	query = applyOrderAndPagination(query, filter, InvoiceSortFields, "issue_date")

	var invoiceModels []models.InvoiceModel
	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// FindAllForParty finds all invoices addressed to a party
func (r *GormInvoiceRepository) FindAllForParty(ctx context.Context, tenantID, partyID uuid.UUID) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND party_id = ?", tenantID, partyID).
		Order("issue_date ASC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// FindAllByPeriod finds all invoices of a kind issued inside [from, to]
func (r *GormInvoiceRepository) FindAllByPeriod(ctx context.Context, tenantID uuid.UUID, kind billing.InvoiceKind, from, to time.Time) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND kind = ? AND issue_date >= ? AND issue_date <= ?",
			tenantID, kind.String(), from, to).
		Order("issue_date ASC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// ExistsByNumber checks if an invoice with the number exists for the tenant and kind
func (r *GormInvoiceRepository) ExistsByNumber(ctx context.Context, tenantID uuid.UUID, kind billing.InvoiceKind, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("tenant_id = ? AND kind = ? AND number = ?", tenantID, kind.String(), strings.ToUpper(number)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextNumber returns the next free number in the tenant's sequence for
// the kind and year, formatted like "F-2026-00042". Voided invoices
// keep their row, so their numbers are never handed out again. The
// unique index on (tenant, kind, number) catches the race between two
// concurrent callers drawing the same number.
func (r *GormInvoiceRepository) NextNumber(ctx context.Context, tenantID uuid.UUID, kind billing.InvoiceKind, year int) (string, error) {
	prefix := fmt.Sprintf("%s-%d-", numberPrefix(kind), year)

	// Numbers share a fixed prefix, so ordering by length first keeps
	// the comparison numeric once a sequence outgrows its zero padding
	// ("...-100000" must beat "...-99999").
	var last string
	err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Select("number").
		Where("tenant_id = ? AND kind = ? AND number LIKE ?", tenantID, kind.String(), prefix+"%").
		Order("length(number) DESC, number DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	next := 1
	if last != "" {
		seq, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
		if err != nil {
			return "", fmt.Errorf("malformed invoice number %q: %w", last, err)
		}
		next = seq + 1
	}

	return fmt.Sprintf("%s%05d", prefix, next), nil
}

// SaveWithLines replaces the invoice header and its full line set in
// one transaction. The header totals and the lines they were computed
// from are never observable out of step.
func (r *GormInvoiceRepository) SaveWithLines(ctx context.Context, invoice *billing.Invoice, lines []billing.InvoiceLine) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(models.InvoiceModelFromDomain(invoice)).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.InvoiceLineModel{}, "invoice_id = ?", invoice.ID).Error; err != nil {
			return err
		}

		if len(lines) == 0 {
			return nil
		}
		lineModels := make([]*models.InvoiceLineModel, len(lines))
		for i := range lines {
			lineModels[i] = models.InvoiceLineModelFromDomain(&lines[i])
		}
		return tx.Create(lineModels).Error
	})
	return translateError(err)
}

// CountForTenant counts invoices of a kind for a tenant
func (r *GormInvoiceRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, kind billing.InvoiceKind) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("tenant_id = ? AND kind = ?", tenantID, kind.String()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func numberPrefix(kind billing.InvoiceKind) string {
	if kind == billing.InvoiceKindPurchase {
		return "R"
	}
	return "F"
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
