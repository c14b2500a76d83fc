package party

import (
	"context"

	"github.com/facturante/backend/internal/domain/party"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo party.ClientRepository
	partyRepo  party.PartyRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo party.ClientRepository, partyRepo party.PartyRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		partyRepo:  partyRepo,
	}
}

// Create creates a new client together with its backing party.
// The code and tax-id checks here are advisory; the (tenant, code)
// unique index is what actually rejects a concurrent duplicate.
func (s *ClientService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSpecializationRequest) (*SpecializationResponse, error) {
	exists, err := s.clientRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this code already exists")
	}

	exists, err = s.partyRepo.ExistsByTaxID(ctx, tenantID, req.TaxID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A party with this tax ID already exists")
	}

	client, err := party.NewClient(tenantID, req.Code, req.Name, req.TaxID)
	if err != nil {
		return nil, err
	}

	if req.Email != "" || req.Phone != "" {
		if err := client.Party.SetContact(req.Email, req.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Add(ctx, client); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Client created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("party_id", client.PartyID().String()),
		zap.String("code", client.Code),
	)

	response := ToClientResponse(client)
	return &response, nil
}

// GetByPartyID retrieves a client by its party ID
func (s *ClientService) GetByPartyID(ctx context.Context, partyID uuid.UUID) (*SpecializationResponse, error) {
	client, err := s.clientRepo.FindByPartyID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByCode retrieves a client by its tenant-local code
func (s *ClientService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*SpecializationResponse, error) {
	client, err := s.clientRepo.FindByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]SpecializationResponse, int64, error) {
	clients, err := s.clientRepo.FindAllForTenant(ctx, tenantID, filter.toDomainFilter())
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.CountForTenant(ctx, tenantID)
	if err != nil {
		return nil, 0, err
	}

	return ToClientResponses(clients), total, nil
}

// Update updates a client and its backing party
func (s *ClientService) Update(ctx context.Context, partyID uuid.UUID, req UpdateSpecializationRequest) (*SpecializationResponse, error) {
	client, err := s.clientRepo.FindByPartyID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Code != nil && *req.Code != client.Code {
		exists, err := s.clientRepo.ExistsByCode(ctx, client.TenantID(), *req.Code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this code already exists")
		}
		if err := client.UpdateCode(*req.Code); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		if err := client.Party.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.TaxID != nil {
		if err := client.Party.SetTaxID(*req.TaxID); err != nil {
			return nil, err
		}
	}

	if req.Email != nil || req.Phone != nil {
		email := client.Party.Email
		phone := client.Party.Phone
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := client.Party.SetContact(email, phone); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete deletes a client, its addresses and its backing party
func (s *ClientService) Delete(ctx context.Context, partyID uuid.UUID) error {
	if err := s.clientRepo.Delete(ctx, partyID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Client deleted", zap.String("party_id", partyID.String()))
	return nil
}
