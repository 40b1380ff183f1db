package types

// =============================================================================
// STOCK
// =============================================================================

type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

type Stock struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Qty         int    `json:"qty"`
	AvgCost     Money  `json:"avgCost"`
	TotalCost   Money  `json:"totalCost"`
	UpdatedAt   string `json:"updatedAt"`
}

type StockMovement struct {
	ID           int64        `json:"id"`
	StockID      int64        `json:"stockId"`
	ProductID    int64        `json:"productId"`
	ProductName  string       `json:"productName"`
	MovementType MovementType `json:"movementType"`
	Qty          int          `json:"qty"`
	UnitCost     Money        `json:"unitCost"`
	TotalCost    Money        `json:"totalCost"`
	Reason       string       `json:"reason,omitempty"`
	CreatedAt    string       `json:"createdAt"`
}

type StockAvailability struct {
	ProductID   int64 `json:"productId"`
	CurrentQty  int   `json:"currentQty"`
	RequiredQty int   `json:"requiredQty"`
	IsAvailable bool  `json:"isAvailable"`
	ShortageQty int   `json:"shortageQty"`
}

// =============================================================================
// STOCK REQUESTS
// =============================================================================

type StockInboundRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Qty       int    `json:"qty" validate:"required,gt=0"`
	UnitCost  *Money `json:"unitCost,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type StockOutboundRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Qty       int    `json:"qty" validate:"required,gt=0"`
	Reason    string `json:"reason,omitempty"`
}

type StockSearchRequest struct {
	PageRequest
	ProductID   int64  `json:"productId,omitempty" validate:"omitempty,gt=0"`
	ProductName string `json:"productName,omitempty"`
}

type StockByProductRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

type StockAvailabilityRequest struct {
	ProductID   int64 `json:"productId" validate:"required,gt=0"`
	RequiredQty int   `json:"requiredQty" validate:"required,gt=0"`
}

// StockMovementSearchRequest - dates are passed through to the backend unchanged
type StockMovementSearchRequest struct {
	PageRequest
	ProductID    int64        `json:"productId,omitempty" validate:"omitempty,gt=0"`
	MovementType MovementType `json:"movementType,omitempty" validate:"omitempty,oneof=IN OUT"`
	StartDate    string       `json:"startDate,omitempty"`
	EndDate      string       `json:"endDate,omitempty"`
}

type StockMovementsByProductRequest struct {
	PageRequest
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}
