package persistence

import (
	"context"
	"errors"

	"github.com/facturante/backend/internal/domain/billing"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaxRateRepository implements billing.TaxRateRepository using GORM
type GormTaxRateRepository struct {
	db *gorm.DB
}

// NewGormTaxRateRepository creates a new GormTaxRateRepository
func NewGormTaxRateRepository(db *gorm.DB) *GormTaxRateRepository {
	return &GormTaxRateRepository{db: db}
}

// Add inserts a new tax rate
func (r *GormTaxRateRepository) Add(ctx context.Context, rate *billing.TaxRate) error {
	model := models.TaxRateModelFromDomain(rate)
	return translateError(r.db.WithContext(ctx).Create(model).Error)
}

// Update updates an existing tax rate
func (r *GormTaxRateRepository) Update(ctx context.Context, rate *billing.TaxRate) error {
	model := models.TaxRateModelFromDomain(rate)
	result := r.db.WithContext(ctx).Model(&models.TaxRateModel{}).
		Where("id = ?", model.ID).
		Select("name", "percent", "updated_at").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a tax rate by its ID. Fails with a constraint
// violation while products still reference it.
func (r *GormTaxRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TaxRateModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a tax rate by its ID
func (r *GormTaxRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.TaxRate, error) {
	var model models.TaxRateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all tax rates
func (r *GormTaxRateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.TaxRate, error) {
	query := r.db.WithContext(ctx).Model(&models.TaxRateModel{}).Order("percent ASC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rateModels []models.TaxRateModel
	if err := query.Find(&rateModels).Error; err != nil {
		return nil, err
	}

	rates := make([]billing.TaxRate, len(rateModels))
	for i, model := range rateModels {
		rates[i] = *model.ToDomain()
	}
	return rates, nil
}

// Ensure GormTaxRateRepository implements TaxRateRepository
var _ billing.TaxRateRepository = (*GormTaxRateRepository)(nil)
