package persistence

import (
	"context"

	"github.com/facturante/backend/internal/domain/billing"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceLineRepository implements billing.InvoiceLineRepository using GORM
type GormInvoiceLineRepository struct {
	db *gorm.DB
}

// NewGormInvoiceLineRepository creates a new GormInvoiceLineRepository
func NewGormInvoiceLineRepository(db *gorm.DB) *GormInvoiceLineRepository {
	return &GormInvoiceLineRepository{db: db}
}

// Add inserts a new line
func (r *GormInvoiceLineRepository) Add(ctx context.Context, line *billing.InvoiceLine) error {
	model := models.InvoiceLineModelFromDomain(line)
	return translateError(r.db.WithContext(ctx).Create(model).Error)
}

// Update updates an existing line
func (r *GormInvoiceLineRepository) Update(ctx context.Context, line *billing.InvoiceLine) error {
	model := models.InvoiceLineModelFromDomain(line)
	result := r.db.WithContext(ctx).Model(&models.InvoiceLineModel{}).
		Where("id = ?", model.ID).
		Select("product_id", "description", "quantity", "unit_price", "discount_percent", "updated_at").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a line by its ID
func (r *GormInvoiceLineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InvoiceLineModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindAllByInvoice finds all lines of an invoice in insertion order
func (r *GormInvoiceLineRepository) FindAllByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]billing.InvoiceLine, error) {
	var lineModels []models.InvoiceLineModel
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("created_at ASC").
		Find(&lineModels).Error; err != nil {
		return nil, err
	}

	lines := make([]billing.InvoiceLine, len(lineModels))
	for i, model := range lineModels {
		lines[i] = *model.ToDomain()
	}
	return lines, nil
}

// DeleteAllByInvoice deletes every line of an invoice
func (r *GormInvoiceLineRepository) DeleteAllByInvoice(ctx context.Context, invoiceID uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).
		Delete(&models.InvoiceLineModel{}, "invoice_id = ?", invoiceID).Error)
}

// Ensure GormInvoiceLineRepository implements InvoiceLineRepository
var _ billing.InvoiceLineRepository = (*GormInvoiceLineRepository)(nil)
