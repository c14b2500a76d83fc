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

// GormClientRepository implements party.ClientRepository using GORM.
// Every write touches two tables: the parties base row and the clients
// specialization row, always inside one transaction.
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Add inserts the party row and the client row in one transaction.
// If the second insert fails the first is rolled back; a client is
// never observable without its party, nor the other way around.
func (r *GormClientRepository) Add(ctx context.Context, client *party.Client) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models.PartyModelFromDomain(&client.Party)).Error; err != nil {
			return err
		}
		return tx.Create(models.ClientModelFromDomain(client)).Error
	})
	return translateError(err)
}

// Update applies party fields and the client code as two statements in
// one transaction
func (r *GormClientRepository) Update(ctx context.Context, client *party.Client) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		partyModel := models.PartyModelFromDomain(&client.Party)
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

		return tx.Model(&models.ClientModel{}).
			Where("party_id = ?", client.PartyID()).
			Update("code", client.Code).Error
	})
	return translateError(err)
}

// Delete removes the client, its addresses and its party row in one transaction
func (r *GormClientRepository) Delete(ctx context.Context, partyID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.AddressModel{}, "party_id = ?", partyID).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.ClientModel{}, "party_id = ?", partyID)
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

// FindByPartyID finds a client by its party ID
func (r *GormClientRepository) FindByPartyID(ctx context.Context, partyID uuid.UUID) (*party.Client, error) {
	var row specializationRow
	err := r.db.WithContext(ctx).
		Table("clients").
		Select(fmt.Sprintf(specializationColumns, "clients")).
		Joins("JOIN parties ON parties.id = clients.party_id").
		Where("clients.party_id = ?", partyID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &party.Client{Party: row.toParty(), Code: row.Code}, nil
}

// FindByCode finds a client by its code within a tenant
func (r *GormClientRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*party.Client, error) {
	var row specializationRow
	err := r.db.WithContext(ctx).
		Table("clients").
		Select(fmt.Sprintf(specializationColumns, "clients")).
		Joins("JOIN parties ON parties.id = clients.party_id").
		Where("clients.tenant_id = ? AND clients.code = ?", tenantID, strings.ToUpper(code)).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &party.Client{Party: row.toParty(), Code: row.Code}, nil
}

// FindAllForTenant finds all clients for a tenant
func (r *GormClientRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]party.Client, error) {
	query := r.db.WithContext(ctx).
		Table("clients").
		Select(fmt.Sprintf(specializationColumns, "clients")).
		Joins("JOIN parties ON parties.id = clients.party_id").
		Where("clients.tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("parties.name ILIKE ? OR parties.tax_id ILIKE ? OR clients.code ILIKE ?",
			pattern, pattern, pattern)
	}

	field := ValidateSortField(filter.OrderBy, PartySortFields, "code")
	query = query.Order(specializationOrderColumn("clients", field) + " " + ValidateSortOrder(filter.OrderDir))
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []specializationRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	clients := make([]party.Client, len(rows))
	for i := range rows {
		clients[i] = party.Client{Party: rows[i].toParty(), Code: rows[i].Code}
	}
	return clients, nil
}

// ExistsByCode checks if a client with the code exists in the tenant
func (r *GormClientRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("tenant_id = ? AND code = ?", tenantID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountForTenant counts clients for a tenant
func (r *GormClientRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormClientRepository implements ClientRepository
var _ party.ClientRepository = (*GormClientRepository)(nil)
