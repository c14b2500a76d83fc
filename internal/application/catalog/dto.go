package catalog

import (
	"time"

	"github.com/facturante/backend/internal/domain/catalog"
	"github.com/facturante/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Code        string          `json:"code" binding:"required,min=1,max=13"`
	Description string          `json:"description" binding:"required,min=1,max=500"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Code        *string          `json:"code" binding:"omitempty,min=1,max=13"`
	Description *string          `json:"description" binding:"omitempty,min=1,max=500"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
}

// AssignSupplierRequest links a product to a preferred supplier
type AssignSupplierRequest struct {
	SupplierID        uuid.UUID `json:"supplier_id" binding:"required"`
	SupplierReference string    `json:"supplier_reference" binding:"max=50"`
}

// StockAdjustmentRequest applies a relative stock movement
type StockAdjustmentRequest struct {
	Delta decimal.Decimal `json:"delta" binding:"required"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                uuid.UUID       `json:"id"`
	TenantID          uuid.UUID       `json:"tenant_id"`
	Code              string          `json:"code"`
	Description       string          `json:"description"`
	SupplierReference string          `json:"supplier_reference"`
	SupplierID        *uuid.UUID      `json:"supplier_id"`
	TaxRateID         *uuid.UUID      `json:"tax_rate_id"`
	CostPrice         string          `json:"cost_price"`
	SalePrice         string          `json:"sale_price"`
	Stock             decimal.Decimal `json:"stock"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListFilter represents filter options for product lists
type ProductListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToProductResponse converts a domain Product to its response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		TenantID:          p.TenantID,
		Code:              p.Code,
		Description:       p.Description,
		SupplierReference: p.SupplierReference,
		SupplierID:        p.SupplierID,
		TaxRateID:         p.TaxRateID,
		CostPrice:         p.CostPrice.StringFixed(2),
		SalePrice:         p.SalePrice.StringFixed(2),
		Stock:             p.Stock,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// toDomainFilter applies list defaults and converts to the shared filter
func (f ProductListFilter) toDomainFilter() shared.Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	if f.OrderBy == "" {
		f.OrderBy = "code"
	}
	if f.OrderDir == "" {
		f.OrderDir = "asc"
	}
	return shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
	}
}
