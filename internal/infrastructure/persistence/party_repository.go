package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/facturante/backend/internal/domain/party"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPartyRepository implements party.PartyRepository using GORM
type GormPartyRepository struct {
	db *gorm.DB
}

// NewGormPartyRepository creates a new GormPartyRepository
func NewGormPartyRepository(db *gorm.DB) *GormPartyRepository {
	return &GormPartyRepository{db: db}
}

// FindByID finds a party by its ID
func (r *GormPartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	var model models.PartyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all parties for a tenant
func (r *GormPartyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]party.Party, error) {
	query := r.db.WithContext(ctx).Model(&models.PartyModel{}).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR tax_id ILIKE ?", pattern, pattern)
	}
	query = applyOrderAndPagination(query, filter, PartySortFields, "name")

	var partyModels []models.PartyModel
	if err := query.Find(&partyModels).Error; err != nil {
		return nil, err
	}

	parties := make([]party.Party, len(partyModels))
	for i, model := range partyModels {
		parties[i] = *model.ToDomain()
	}
	return parties, nil
}

// Save creates or updates a party row
func (r *GormPartyRepository) Save(ctx context.Context, p *party.Party) error {
	model := models.PartyModelFromDomain(p)
	return translateError(r.db.WithContext(ctx).Save(model).Error)
}

// Delete deletes a party with its specialization row and addresses in
// one transaction. The schema's ON DELETE CASCADE would cover the
// dependents anyway; deleting them explicitly keeps the behavior
// identical on schemas restored without the constraints.
func (r *GormPartyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.AddressModel{}, "party_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ClientModel{}, "party_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.SupplierModel{}, "party_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.PartyModel{}, "id = ?", id)
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

// ExistsByTaxID checks whether a party with the tax ID exists in the tenant
func (r *GormPartyRepository) ExistsByTaxID(ctx context.Context, tenantID uuid.UUID, taxID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PartyModel{}).
		Where("tenant_id = ? AND tax_id = ?", tenantID, strings.ToUpper(taxID)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountForTenant counts parties for a tenant
func (r *GormPartyRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PartyModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormPartyRepository implements PartyRepository
var _ party.PartyRepository = (*GormPartyRepository)(nil)
