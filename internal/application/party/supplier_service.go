package party

import (
	"context"

	"github.com/facturante/backend/internal/domain/party"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SupplierService handles supplier-related business operations. It
// mirrors ClientService over the supplier store; the two codes live in
// independent namespaces.
type SupplierService struct {
	supplierRepo party.SupplierRepository
	partyRepo    party.PartyRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo party.SupplierRepository, partyRepo party.PartyRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		partyRepo:    partyRepo,
	}
}

// Create creates a new supplier together with its backing party
func (s *SupplierService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSpecializationRequest) (*SpecializationResponse, error) {
	exists, err := s.supplierRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this code already exists")
	}

	exists, err = s.partyRepo.ExistsByTaxID(ctx, tenantID, req.TaxID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A party with this tax ID already exists")
	}

	supplier, err := party.NewSupplier(tenantID, req.Code, req.Name, req.TaxID)
	if err != nil {
		return nil, err
	}

	if req.Email != "" || req.Phone != "" {
		if err := supplier.Party.SetContact(req.Email, req.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Add(ctx, supplier); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Supplier created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("party_id", supplier.PartyID().String()),
		zap.String("code", supplier.Code),
	)

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByPartyID retrieves a supplier by its party ID
func (s *SupplierService) GetByPartyID(ctx context.Context, partyID uuid.UUID) (*SpecializationResponse, error) {
	supplier, err := s.supplierRepo.FindByPartyID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByCode retrieves a supplier by its tenant-local code
func (s *SupplierService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*SpecializationResponse, error) {
	supplier, err := s.supplierRepo.FindByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]SpecializationResponse, int64, error) {
	suppliers, err := s.supplierRepo.FindAllForTenant(ctx, tenantID, filter.toDomainFilter())
	if err != nil {
		return nil, 0, err
	}

	total, err := s.supplierRepo.CountForTenant(ctx, tenantID)
	if err != nil {
		return nil, 0, err
	}

	return ToSupplierResponses(suppliers), total, nil
}

// Update updates a supplier and its backing party
func (s *SupplierService) Update(ctx context.Context, partyID uuid.UUID, req UpdateSpecializationRequest) (*SpecializationResponse, error) {
	supplier, err := s.supplierRepo.FindByPartyID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Code != nil && *req.Code != supplier.Code {
		exists, err := s.supplierRepo.ExistsByCode(ctx, supplier.TenantID(), *req.Code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this code already exists")
		}
		if err := supplier.UpdateCode(*req.Code); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		if err := supplier.Party.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.TaxID != nil {
		if err := supplier.Party.SetTaxID(*req.TaxID); err != nil {
			return nil, err
		}
	}

	if req.Email != nil || req.Phone != nil {
		email := supplier.Party.Email
		phone := supplier.Party.Phone
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := supplier.Party.SetContact(email, phone); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete deletes a supplier, its addresses and its backing party
func (s *SupplierService) Delete(ctx context.Context, partyID uuid.UUID) error {
	if err := s.supplierRepo.Delete(ctx, partyID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Supplier deleted", zap.String("party_id", partyID.String()))
	return nil
}
