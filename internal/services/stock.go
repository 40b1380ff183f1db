package services

import (
	"context"

	"github.com/alex005489465/MeowManager/internal/types"
)

// StockService calls the /api/stocks endpoints
type StockService struct {
	base
}

// Inbound records goods received for a product. unitCost is optional; the backend updates the weighted average cost.
func (s *StockService) Inbound(ctx context.Context, req types.StockInboundRequest) (*types.StockMovement, error) {
	movement, err := mutate[types.StockMovement](ctx, s.base, "stock inbound", stockInboundPath, req)
	if err != nil {
		return nil, err
	}
	return &movement, nil
}

// Outbound records goods leaving stock. The backend rejects quantities above the current stock (INSUFFICIENT_STOCK).
func (s *StockService) Outbound(ctx context.Context, req types.StockOutboundRequest) (*types.StockMovement, error) {
	movement, err := mutate[types.StockMovement](ctx, s.base, "stock outbound", stockOutboundPath, req)
	if err != nil {
		return nil, err
	}
	return &movement, nil
}

func (s *StockService) List(ctx context.Context, req types.StockSearchRequest) (*types.Page[types.Stock], error) {
	page, err := mutate[types.Page[types.Stock]](ctx, s.base, "list stock", stockQueryPath, req)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByProduct returns nil when the product has no stock record
func (s *StockService) GetByProduct(ctx context.Context, productID int64) (*types.Stock, error) {
	return lookup[types.Stock](ctx, s.base, "get stock by product", stockByProductPath, types.StockByProductRequest{ProductID: productID})
}

// ProductQuantity returns the quantity in stock for a product, 0 when the product has no stock record
func (s *StockService) ProductQuantity(ctx context.Context, productID int64) (int, error) {
	stock, err := s.GetByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	if stock == nil {
		return 0, nil
	}
	return stock.Qty, nil
}

func (s *StockService) CheckAvailability(ctx context.Context, productID int64, requiredQty int) (*types.StockAvailability, error) {
	req := types.StockAvailabilityRequest{ProductID: productID, RequiredQty: requiredQty}
	availability, err := mutate[types.StockAvailability](ctx, s.base, "check stock availability", stockAvailabilityPath, req)
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

func (s *StockService) Movements(ctx context.Context, req types.StockMovementSearchRequest) (*types.Page[types.StockMovement], error) {
	page, err := mutate[types.Page[types.StockMovement]](ctx, s.base, "list stock movements", stockMovementsPath, req)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *StockService) MovementsByProduct(ctx context.Context, productID int64, page types.PageRequest) (*types.Page[types.StockMovement], error) {
	req := types.StockMovementsByProductRequest{PageRequest: page, ProductID: productID}
	res, err := mutate[types.Page[types.StockMovement]](ctx, s.base, "list stock movements by product", stockMovementsByProductPath, req)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
