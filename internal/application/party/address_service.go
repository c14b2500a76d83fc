package party

import (
	"context"

	"github.com/facturante/backend/internal/domain/party"
	"github.com/google/uuid"
)

// AddressService handles address-related business operations
type AddressService struct {
	addressRepo party.AddressRepository
	partyRepo   party.PartyRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo party.AddressRepository, partyRepo party.PartyRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		partyRepo:   partyRepo,
	}
}

// Create creates a new address for an existing party
func (s *AddressService) Create(ctx context.Context, req CreateAddressRequest) (*AddressResponse, error) {
	// The owning party must exist; the FK would reject the insert anyway
	// but this gives the caller a NOT_FOUND instead of a constraint error.
	if _, err := s.partyRepo.FindByID(ctx, req.PartyID); err != nil {
		return nil, err
	}

	address, err := party.NewAddress(req.PartyID, party.AddressLabel(req.Label),
		req.Street, req.PostalCode, req.City, req.Province, req.Country)
	if err != nil {
		return nil, err
	}

	if err := s.addressRepo.Add(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// GetByID retrieves an address by ID within a tenant
func (s *AddressService) GetByID(ctx context.Context, tenantID, addressID uuid.UUID) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByID(ctx, tenantID, addressID)
	if err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// ListForParty retrieves all addresses owned by a party
func (s *AddressService) ListForParty(ctx context.Context, partyID uuid.UUID) ([]AddressResponse, error) {
	addresses, err := s.addressRepo.FindAllForParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	return ToAddressResponses(addresses), nil
}

// Update updates an address
func (s *AddressService) Update(ctx context.Context, tenantID, addressID uuid.UUID, req UpdateAddressRequest) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByID(ctx, tenantID, addressID)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		if err := address.Relabel(party.AddressLabel(*req.Label)); err != nil {
			return nil, err
		}
	}

	if req.Street != nil || req.PostalCode != nil || req.City != nil || req.Province != nil || req.Country != nil {
		street := address.Street
		postalCode := address.PostalCode
		city := address.City
		province := address.Province
		country := address.Country

		if req.Street != nil {
			street = *req.Street
		}
		if req.PostalCode != nil {
			postalCode = *req.PostalCode
		}
		if req.City != nil {
			city = *req.City
		}
		if req.Province != nil {
			province = *req.Province
		}
		if req.Country != nil {
			country = *req.Country
		}

		if err := address.Update(street, postalCode, city, province, country); err != nil {
			return nil, err
		}
	}

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// Delete deletes an address. The owning party keeps its other addresses.
func (s *AddressService) Delete(ctx context.Context, tenantID, addressID uuid.UUID) error {
	// Scope check before the delete; the delete itself is by primary key.
	if _, err := s.addressRepo.FindByID(ctx, tenantID, addressID); err != nil {
		return err
	}

	return s.addressRepo.Delete(ctx, addressID)
}
