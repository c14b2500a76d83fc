package persistence

import (
	"context"
	"errors"

	"github.com/facturante/backend/internal/domain/party"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAddressRepository implements party.AddressRepository using GORM.
// Addresses have no tenant column; tenant-scoped reads join through the
// owning party.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Add inserts a new address
func (r *GormAddressRepository) Add(ctx context.Context, address *party.Address) error {
	model := models.AddressModelFromDomain(address)
	return translateError(r.db.WithContext(ctx).Create(model).Error)
}

// Update updates an existing address
func (r *GormAddressRepository) Update(ctx context.Context, address *party.Address) error {
	model := models.AddressModelFromDomain(address)
	result := r.db.WithContext(ctx).Model(&models.AddressModel{}).
		Where("id = ?", model.ID).
		Select("label", "street", "postal_code", "city", "province", "country", "updated_at").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes an address by its ID
func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an address by ID within a tenant
func (r *GormAddressRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*party.Address, error) {
	var model models.AddressModel
	err := r.db.WithContext(ctx).
		Joins("JOIN parties ON parties.id = addresses.party_id").
		Where("addresses.id = ? AND parties.tenant_id = ?", id, tenantID).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all addresses belonging to a tenant's parties
func (r *GormAddressRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]party.Address, error) {
	query := r.db.WithContext(ctx).
		Model(&models.AddressModel{}).
		Joins("JOIN parties ON parties.id = addresses.party_id").
		Where("parties.tenant_id = ?", tenantID).
		Order("addresses.created_at ASC")

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var addressModels []models.AddressModel
	if err := query.Find(&addressModels).Error; err != nil {
		return nil, err
	}

	addresses := make([]party.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = *model.ToDomain()
	}
	return addresses, nil
}

// FindAllForParty finds all addresses owned by a party
func (r *GormAddressRepository) FindAllForParty(ctx context.Context, partyID uuid.UUID) ([]party.Address, error) {
	var addressModels []models.AddressModel
	if err := r.db.WithContext(ctx).
		Where("party_id = ?", partyID).
		Order("created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, err
	}

	addresses := make([]party.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = *model.ToDomain()
	}
	return addresses, nil
}

// Ensure GormAddressRepository implements AddressRepository
var _ party.AddressRepository = (*GormAddressRepository)(nil)
