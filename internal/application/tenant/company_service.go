package tenant

import (
	"context"
	"errors"
	"time"

	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/domain/tenant"
	"github.com/facturante/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateCompanyRequest represents a request to create a company
type CreateCompanyRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	TaxID string `json:"tax_id" binding:"required,min=1,max=20"`
}

// UpdateCompanyRequest represents a request to update a company
type UpdateCompanyRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=200"`
	TaxID *string `json:"tax_id" binding:"omitempty,min=1,max=20"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCompanyResponse converts a domain Company to its response
func ToCompanyResponse(c *tenant.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CompanyService handles company (tenant) business operations
type CompanyService struct {
	companyRepo tenant.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo tenant.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// Create creates a new company. The company tax ID is globally unique,
// enforced by the database index.
func (s *CompanyService) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	_, err := s.companyRepo.FindByTaxID(ctx, req.TaxID)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Company with this tax ID already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	company, err := tenant.NewCompany(req.Name, req.TaxID)
	if err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Company created",
		zap.String("company_id", company.ID.String()),
		zap.String("tax_id", company.TaxID),
	)

	response := ToCompanyResponse(company)
	return &response, nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(ctx context.Context, companyID uuid.UUID) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// GetByTaxID retrieves a company by its tax identification number
func (s *CompanyService) GetByTaxID(ctx context.Context, taxID string) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// List retrieves all companies
func (s *CompanyService) List(ctx context.Context, filter shared.Filter) ([]CompanyResponse, int64, error) {
	companies, err := s.companyRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.companyRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = ToCompanyResponse(&companies[i])
	}
	return responses, total, nil
}

// Update updates a company
func (s *CompanyService) Update(ctx context.Context, companyID uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := company.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.TaxID != nil {
		if err := company.SetTaxID(*req.TaxID); err != nil {
			return nil, err
		}
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// Delete deletes a company. Fails with a constraint violation while
// parties, products or invoices still reference it.
func (s *CompanyService) Delete(ctx context.Context, companyID uuid.UUID) error {
	return s.companyRepo.Delete(ctx, companyID)
}
