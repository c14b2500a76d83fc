package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/facturante/backend/internal/domain/party"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSupplierRepository implements party.SupplierRepository using GORM.
// Mirrors GormClientRepository over the suppliers specialization table.
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Add inserts the party row and the supplier row in one transaction
func (r *GormSupplierRepository) Add(ctx context.Context, supplier *party.Supplier) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models.PartyModelFromDomain(&supplier.Party)).Error; err != nil {
			return err
		}
		return tx.Create(models.SupplierModelFromDomain(supplier)).Error
	})
	return translateError(err)
}

// Update applies party fields and the supplier code as two statements
// in one transaction
func (r *GormSupplierRepository) Update(ctx context.Context, supplier *party.Supplier) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		partyModel := models.PartyModelFromDomain(&supplier.Party)
		result := tx.Model(&models.PartyModel{}).
			Where("id = ?", partyModel.ID).
			Select("name", "tax_id", "email", "phone", "updated_at").
			Updates(partyModel)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		return tx.Model(&models.SupplierModel{}).
			Where("party_id = ?", supplier.PartyID()).
			Update("code", supplier.Code).Error
	})
	return translateError(err)
}

// Delete removes the supplier, its addresses and its party row in one transaction
func (r *GormSupplierRepository) Delete(ctx context.Context, partyID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.AddressModel{}, "party_id = ?", partyID).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.SupplierModel{}, "party_id = ?", partyID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		return tx.Delete(&models.PartyModel{}, "id = ?", partyID).Error
	})
	return translateError(err)
}

// FindByPartyID finds a supplier by its party ID
func (r *GormSupplierRepository) FindByPartyID(ctx context.Context, partyID uuid.UUID) (*party.Supplier, error) {
	var row specializationRow
	err := r.db.WithContext(ctx).
		Table("suppliers").
		Select(fmt.Sprintf(specializationColumns, "suppliers")).
		Joins("JOIN parties ON parties.id = suppliers.party_id").
		Where("suppliers.party_id = ?", partyID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &party.Supplier{Party: row.toParty(), Code: row.Code}, nil
}

// FindByCode finds a supplier by its code within a tenant
func (r *GormSupplierRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*party.Supplier, error) {
	var row specializationRow
	err := r.db.WithContext(ctx).
		Table("suppliers").
		Select(fmt.Sprintf(specializationColumns, "suppliers")).
		Joins("JOIN parties ON parties.id = suppliers.party_id").
		Where("suppliers.tenant_id = ? AND suppliers.code = ?", tenantID, strings.ToUpper(code)).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &party.Supplier{Party: row.toParty(), Code: row.Code}, nil
}

// FindAllForTenant finds all suppliers for a tenant
func (r *GormSupplierRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]party.Supplier, error) {
	query := r.db.WithContext(ctx).
		Table("suppliers").
		Select(fmt.Sprintf(specializationColumns, "suppliers")).
		Joins("JOIN parties ON parties.id = suppliers.party_id").
		Where("suppliers.tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("parties.name ILIKE ? OR parties.tax_id ILIKE ? OR suppliers.code ILIKE ?",
			pattern, pattern, pattern)
	}

	field := ValidateSortField(filter.OrderBy, PartySortFields, "code")
	query = query.Order(specializationOrderColumn("suppliers", field) + " " + ValidateSortOrder(filter.OrderDir))
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []specializationRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	suppliers := make([]party.Supplier, len(rows))
	for i := range rows {
		suppliers[i] = party.Supplier{Party: rows[i].toParty(), Code: rows[i].Code}
	}
	return suppliers, nil
}

// ExistsByCode checks if a supplier with the code exists in the tenant
func (r *GormSupplierRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SupplierModel{}).
		Where("tenant_id = ? AND code = ?", tenantID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountForTenant counts suppliers for a tenant
func (r *GormSupplierRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SupplierModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSupplierRepository implements SupplierRepository
var _ party.SupplierRepository = (*GormSupplierRepository)(nil)
