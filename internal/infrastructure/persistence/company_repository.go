package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/domain/tenant"
	"github.com/facturante/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCompanyRepository implements tenant.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by its ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenant.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTaxID finds a company by its tax ID
func (r *GormCompanyRepository) FindByTaxID(ctx context.Context, taxID string) (*tenant.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).
		Where("tax_id = ?", strings.ToUpper(taxID)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all companies matching the filter
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenant.Company, error) {
	query := r.db.WithContext(ctx).Model(&models.CompanyModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR tax_id ILIKE ?", pattern, pattern)
	}
	query = applyOrderAndPagination(query, filter, CompanySortFields, "name")

	var companyModels []models.CompanyModel
	if err := query.Find(&companyModels).Error; err != nil {
		return nil, err
	}

	companies := make([]tenant.Company, len(companyModels))
	for i, model := range companyModels {
		companies[i] = *model.ToDomain()
	}
	return companies, nil
}

// Save creates or updates a company
func (r *GormCompanyRepository) Save(ctx context.Context, c *tenant.Company) error {
	model := models.CompanyModelFromDomain(c)
	return translateError(r.db.WithContext(ctx).Save(model).Error)
}

// Delete deletes a company by its ID
func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CompanyModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all companies
func (r *GormCompanyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CompanyModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCompanyRepository implements CompanyRepository
var _ tenant.CompanyRepository = (*GormCompanyRepository)(nil)
