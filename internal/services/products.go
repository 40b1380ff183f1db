package services

import (
	"context"

	"github.com/alex005489465/MeowManager/internal/apperrors"
	"github.com/alex005489465/MeowManager/internal/types"
)

// ProductService calls the /api/products endpoints
type ProductService struct {
	base
}

func (s *ProductService) Create(ctx context.Context, req types.ProductCreateRequest) (*types.Product, error) {
	if req.Price.IsNegative() {
		return nil, negativePriceError()
	}
	product, err := mutate[types.Product](ctx, s.base, "create product", productCreatePath, req)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(ctx context.Context, req types.ProductUpdateRequest) (*types.Product, error) {
	if req.Price.IsNegative() {
		return nil, negativePriceError()
	}
	product, err := mutate[types.Product](ctx, s.base, "update product", productUpdatePath, req)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) UpdateStatus(ctx context.Context, id int64, status types.ProductStatus) (*types.Product, error) {
	req := types.ProductStatusUpdateRequest{ID: id, Status: status}
	product, err := mutate[types.Product](ctx, s.base, "update product status", productUpdateStatusPath, req)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Search(ctx context.Context, req types.ProductSearchRequest) (*types.Page[types.Product], error) {
	page, err := mutate[types.Page[types.Product]](ctx, s.base, "search products", productSearchPath, req)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchByName returns an empty list when the backend reports a failure
func (s *ProductService) SearchByName(ctx context.Context, name string) ([]types.Product, error) {
	return lookupList[types.Product](ctx, s.base, "search products by name", productSearchByNamePath, types.ProductSearchNameRequest{Name: name})
}

func (s *ProductService) GetAll(ctx context.Context, page types.PageRequest) (*types.Page[types.Product], error) {
	res, err := mutate[types.Page[types.Product]](ctx, s.base, "get all products", productGetAllPath, page)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetByID returns nil when the product does not exist
func (s *ProductService) GetByID(ctx context.Context, id int64) (*types.Product, error) {
	return lookup[types.Product](ctx, s.base, "get product by id", productGetByIDPath, types.ProductSearchIDRequest{ID: id})
}

func (s *ProductService) GetByStatus(ctx context.Context, req types.ProductSearchStatusRequest) ([]types.Product, error) {
	return mutate[[]types.Product](ctx, s.base, "get products by status", productGetByStatusPath, req)
}

func (s *ProductService) GetByType(ctx context.Context, req types.ProductSearchTypeRequest) ([]types.Product, error) {
	return mutate[[]types.Product](ctx, s.base, "get products by type", productGetByTypePath, req)
}

// GetByPriceRange returns the products priced between min and max (inclusive)
func (s *ProductService) GetByPriceRange(ctx context.Context, req types.ProductSearchPriceRangeRequest) ([]types.Product, error) {
	if req.MinPrice.IsNegative() || req.MaxPrice.LessThan(req.MinPrice.Decimal) {
		return nil, apperrors.NewBusinessError("invalid request: price range must satisfy 0 <= minPrice <= maxPrice", apperrors.ErrCodeValidationError)
	}
	return mutate[[]types.Product](ctx, s.base, "get products by price range", productGetByPriceRangePath, req)
}

func (s *ProductService) Statistics(ctx context.Context) (*types.ProductStatistics, error) {
	stats, err := mutate[types.ProductStatistics](ctx, s.base, "get product statistics", productStatisticsPath, emptyRequest)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func negativePriceError() error {
	return apperrors.NewBusinessError("invalid request: price must be at least 0", apperrors.ErrCodeValidationError)
}
