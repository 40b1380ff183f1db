package types

// =============================================================================
// PRODUCT ENUMS
// =============================================================================

type ProductStatus string

const (
	ProductActive       ProductStatus = "ACTIVE"
	ProductInactive     ProductStatus = "INACTIVE"
	ProductDiscontinued ProductStatus = "DISCONTINUED"
)

type ProductType string

const (
	ProductPhysical ProductType = "PHYSICAL"
	ProductDigital  ProductType = "DIGITAL"
	ProductService  ProductType = "SERVICE"
)

// =============================================================================
// PRODUCT
// =============================================================================

type Product struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Type        ProductType   `json:"type"`
	Price       Money         `json:"price"`
	Cost        *Money        `json:"cost"`
	SKU         string        `json:"sku,omitempty"`
	Barcode     string        `json:"barcode,omitempty"`
	Stock       *int          `json:"stock,omitempty"`
	MinStock    *int          `json:"minStock,omitempty"`
	MaxStock    *int          `json:"maxStock,omitempty"`
	Status      ProductStatus `json:"status"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

type ProductStatistics struct {
	TotalProducts        int64                 `json:"totalProducts"`
	ActiveProducts       int64                 `json:"activeProducts"`
	InactiveProducts     int64                 `json:"inactiveProducts"`
	DiscontinuedProducts int64                 `json:"discontinuedProducts"`
	ProductsByType       map[ProductType]int64 `json:"productsByType"`
	LowStockProducts     int64                 `json:"lowStockProducts"`
	TotalValue           Money                 `json:"totalValue"`
}

// =============================================================================
// PRODUCT REQUESTS
// =============================================================================

type ProductCreateRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description,omitempty"`
	Type        ProductType `json:"type" validate:"required,oneof=PHYSICAL DIGITAL SERVICE"`
	Price       Money       `json:"price"`
	Cost        *Money      `json:"cost,omitempty"`
	SKU         string      `json:"sku,omitempty"`
	Barcode     string      `json:"barcode,omitempty"`
	Stock       *int        `json:"stock,omitempty" validate:"omitempty,min=0"`
	MinStock    *int        `json:"minStock,omitempty" validate:"omitempty,min=0"`
	MaxStock    *int        `json:"maxStock,omitempty" validate:"omitempty,min=0"`
}

type ProductUpdateRequest struct {
	ID          int64       `json:"id" validate:"required,gt=0"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description,omitempty"`
	Type        ProductType `json:"type" validate:"required,oneof=PHYSICAL DIGITAL SERVICE"`
	Price       Money       `json:"price"`
	Cost        *Money      `json:"cost,omitempty"`
	SKU         string      `json:"sku,omitempty"`
	Barcode     string      `json:"barcode,omitempty"`
	Stock       *int        `json:"stock,omitempty" validate:"omitempty,min=0"`
	MinStock    *int        `json:"minStock,omitempty" validate:"omitempty,min=0"`
	MaxStock    *int        `json:"maxStock,omitempty" validate:"omitempty,min=0"`
}

type ProductStatusUpdateRequest struct {
	ID     int64         `json:"id" validate:"required,gt=0"`
	Status ProductStatus `json:"status" validate:"required,oneof=ACTIVE INACTIVE DISCONTINUED"`
}

type ProductSearchRequest struct {
	PageRequest
	Name     string        `json:"name,omitempty"`
	Type     ProductType   `json:"type,omitempty" validate:"omitempty,oneof=PHYSICAL DIGITAL SERVICE"`
	Status   ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE DISCONTINUED"`
	MinPrice *Money        `json:"minPrice,omitempty"`
	MaxPrice *Money        `json:"maxPrice,omitempty"`
	SKU      string        `json:"sku,omitempty"`
	Barcode  string        `json:"barcode,omitempty"`
}

type ProductSearchNameRequest struct {
	Name string `json:"name" validate:"required"`
}

type ProductSearchIDRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

type ProductSearchStatusRequest struct {
	PageRequest
	Status ProductStatus `json:"status" validate:"required,oneof=ACTIVE INACTIVE DISCONTINUED"`
}

type ProductSearchTypeRequest struct {
	PageRequest
	Type ProductType `json:"type" validate:"required,oneof=PHYSICAL DIGITAL SERVICE"`
}

type ProductSearchPriceRangeRequest struct {
	PageRequest
	MinPrice Money `json:"minPrice"`
	MaxPrice Money `json:"maxPrice"`
}
