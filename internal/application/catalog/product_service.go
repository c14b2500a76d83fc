package catalog

import (
	"context"

	"github.com/facturante/backend/internal/domain/billing"
	"github.com/facturante/backend/internal/domain/catalog"
	"github.com/facturante/backend/internal/domain/party"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/facturante/backend/internal/domain/shared/valueobject"
	"github.com/facturante/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	supplierRepo party.SupplierRepository
	taxRateRepo  billing.TaxRateRepository
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	supplierRepo party.SupplierRepository,
	taxRateRepo billing.TaxRateRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		taxRateRepo:  taxRateRepo,
	}
}

// Create creates a new product. The code check is advisory; the
// (tenant, code) unique index is the real guard.
func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this code already exists")
	}

	product, err := catalog.NewProductWithPrices(tenantID, req.Code, req.Description,
		valueobject.NewMoneyEUR(req.CostPrice), valueobject.NewMoneyEUR(req.SalePrice))
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Add(ctx, product); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Product created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("product_id", product.ID.String()),
		zap.String("code", product.Code),
	)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByCode retrieves a product by its tenant-local code
func (s *ProductService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, filter ProductListFilter) ([]ProductResponse, int64, error) {
	products, err := s.productRepo.FindAllForTenant(ctx, tenantID, filter.toDomainFilter())
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.CountForTenant(ctx, tenantID)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// ListBySupplier retrieves all products assigned to a supplier
func (s *ProductService) ListBySupplier(ctx context.Context, tenantID, supplierPartyID uuid.UUID) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAllBySupplier(ctx, tenantID, supplierPartyID)
	if err != nil {
		return nil, err
	}

	return ToProductResponses(products), nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Code != nil && *req.Code != product.Code {
		exists, err := s.productRepo.ExistsByCode(ctx, product.TenantID, *req.Code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this code already exists")
		}
		if err := product.UpdateCode(*req.Code); err != nil {
			return nil, err
		}
	}

	if req.Description != nil {
		if err := product.UpdateDescription(*req.Description); err != nil {
			return nil, err
		}
	}

	if req.CostPrice != nil || req.SalePrice != nil {
		costPrice := product.CostPrice
		salePrice := product.SalePrice
		if req.CostPrice != nil {
			costPrice = valueobject.NewMoneyEUR(*req.CostPrice)
		}
		if req.SalePrice != nil {
			salePrice = valueobject.NewMoneyEUR(*req.SalePrice)
		}
		if err := product.UpdatePrices(costPrice, salePrice); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// AssignSupplier links a product to a preferred supplier
func (s *ProductService) AssignSupplier(ctx context.Context, productID uuid.UUID, req AssignSupplierRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.FindByPartyID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier.TenantID() != product.TenantID {
		return nil, shared.NewDomainError("TENANT_MISMATCH", "Supplier belongs to a different tenant")
	}

	if err := product.AssignSupplier(req.SupplierID, req.SupplierReference); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// ClearSupplier detaches a product from its supplier
func (s *ProductService) ClearSupplier(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.ClearSupplier()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// AssignTaxRate links a product to a tax rate
func (s *ProductService) AssignTaxRate(ctx context.Context, productID, taxRateID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if _, err := s.taxRateRepo.FindByID(ctx, taxRateID); err != nil {
		return nil, err
	}

	if err := product.AssignTaxRate(taxRateID); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// ClearTaxRate detaches a product from its tax rate
func (s *ProductService) ClearTaxRate(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.ClearTaxRate()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// AdjustStock applies a relative stock movement
func (s *ProductService) AdjustStock(ctx context.Context, productID uuid.UUID, req StockAdjustmentRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.AdjustStock(req.Delta); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product. Invoice lines pointing at it keep their
// snapshot fields and fall back to free-text lines.
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	return s.productRepo.Delete(ctx, productID)
}
