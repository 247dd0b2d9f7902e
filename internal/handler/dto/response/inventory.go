package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"webmall/internal/usecase/queries"
)

type InventoryResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int32     `json:"quantity"`
	Threshold   int32     `json:"low_stock_threshold"`
	LowStock    bool      `json:"low_stock"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromInventoryView(v *queries.InventoryView) *InventoryResponse {
	var resp InventoryResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromInventoryList(views []*queries.InventoryView) []*InventoryResponse {
	res := make([]*InventoryResponse, len(views))
	for i, v := range views {
		res[i] = FromInventoryView(v)
	}
	return res
}
