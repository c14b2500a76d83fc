package billing

import (
	"context"

	"github.com/facturante/backend/internal/domain/billing"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TaxRateService handles tax rate business operations. Rates are shared
// across tenants.
type TaxRateService struct {
	taxRateRepo billing.TaxRateRepository
}

// NewTaxRateService creates a new TaxRateService
func NewTaxRateService(taxRateRepo billing.TaxRateRepository) *TaxRateService {
	return &TaxRateService{taxRateRepo: taxRateRepo}
}

// Create creates a new tax rate
func (s *TaxRateService) Create(ctx context.Context, req CreateTaxRateRequest) (*TaxRateResponse, error) {
	rate, err := billing.NewTaxRate(req.Name, req.Percent)
	if err != nil {
		return nil, err
	}

	if err := s.taxRateRepo.Add(ctx, rate); err != nil {
		return nil, err
	}

	response := ToTaxRateResponse(rate)
	return &response, nil
}

// GetByID retrieves a tax rate by ID
func (s *TaxRateService) GetByID(ctx context.Context, rateID uuid.UUID) (*TaxRateResponse, error) {
	rate, err := s.taxRateRepo.FindByID(ctx, rateID)
	if err != nil {
		return nil, err
	}

	response := ToTaxRateResponse(rate)
	return &response, nil
}

// List retrieves all tax rates
func (s *TaxRateService) List(ctx context.Context) ([]TaxRateResponse, error) {
	rates, err := s.taxRateRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	return ToTaxRateResponses(rates), nil
}

// Update updates a tax rate
func (s *TaxRateService) Update(ctx context.Context, rateID uuid.UUID, req UpdateTaxRateRequest) (*TaxRateResponse, error) {
	rate, err := s.taxRateRepo.FindByID(ctx, rateID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := rate.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Percent != nil {
		if err := rate.SetPercent(*req.Percent); err != nil {
			return nil, err
		}
	}

	if err := s.taxRateRepo.Update(ctx, rate); err != nil {
		return nil, err
	}

	response := ToTaxRateResponse(rate)
	return &response, nil
}

// Delete deletes a tax rate. Fails with a constraint violation while
// products still reference it.
func (s *TaxRateService) Delete(ctx context.Context, rateID uuid.UUID) error {
	return s.taxRateRepo.Delete(ctx, rateID)
}
