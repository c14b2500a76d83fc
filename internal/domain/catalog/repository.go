package catalog

import (
	"context"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// Add inserts a new product
	Add(ctx context.Context, product *Product) error

	// Update updates an existing product
	Update(ctx context.Context, product *Product) error

	// Delete deletes a product by its ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByCode finds a product by its code within a tenant
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Product, error)

	// FindAll lists products across every tenant. It carries no tenant
	// filter on purpose: callers that need scoping use FindAllForTenant,
	// and the ones that call this own the scoping themselves.
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindAllForTenant finds all products for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Product, error)

	// FindAllBySupplier finds all products assigned to a supplier party
	FindAllBySupplier(ctx context.Context, tenantID, supplierPartyID uuid.UUID) ([]Product, error)

	// ExistsByCode checks if a product with the given code exists in the tenant
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)

	// CountForTenant counts products for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
