package party

import (
	"context"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartyRepository defines the interface for base party persistence
type PartyRepository interface {
	// FindByID finds a party by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Party, error)

	// FindAllForTenant finds all parties for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Party, error)

	// Save creates or updates a party row on its own. Specialization
	// stores write the party row inside their own transaction; this
	// method exists for contact-field updates that touch nothing else.
	Save(ctx context.Context, p *Party) error

	// Delete deletes a party together with its specialization row and
	// addresses, in a single transaction
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByTaxID checks whether a party with the given tax ID exists
	// in the tenant. Advisory only: callers check before adding a
	// specialization, nothing prevents a concurrent writer from slipping
	// a duplicate in between the check and the insert.
	ExistsByTaxID(ctx context.Context, tenantID uuid.UUID, taxID string) (bool, error)

	// CountForTenant counts parties for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// SpecializationRepository is the capability set shared by the client
// and supplier stores. Both specializations are persisted as a party
// row plus a code row written atomically.
type SpecializationRepository[T any] interface {
	// Add inserts the party row and the specialization row in one
	// transaction; if either insert fails both are rolled back
	Add(ctx context.Context, spec *T) error

	// Update applies party fields and specialization fields as two
	// statements inside one transaction
	Update(ctx context.Context, spec *T) error

	// Delete removes the specialization, its addresses and its party
	// row by party ID, in one transaction
	Delete(ctx context.Context, partyID uuid.UUID) error

	// FindByPartyID finds a specialization by its party ID
	FindByPartyID(ctx context.Context, partyID uuid.UUID) (*T, error)

	// FindByCode finds a specialization by its code within a tenant
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*T, error)

	// FindAllForTenant finds all specializations for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]T, error)

	// ExistsByCode checks if a specialization with the given code exists
	// in the tenant
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)

	// CountForTenant counts specializations for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	SpecializationRepository[Client]
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	SpecializationRepository[Supplier]
}

// AddressRepository defines the interface for address persistence
type AddressRepository interface {
	// Add inserts a new address
	Add(ctx context.Context, address *Address) error

	// Update updates an existing address
	Update(ctx context.Context, address *Address) error

	// Delete deletes an address by its ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an address by ID within a tenant. The tenant filter
	// joins through the owning party since addresses carry no tenant
	// column of their own.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Address, error)

	// FindAllForTenant finds all addresses for a tenant (join through parties)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Address, error)

	// FindAllForParty finds all addresses owned by a party
	FindAllForParty(ctx context.Context, partyID uuid.UUID) ([]Address, error)
}
