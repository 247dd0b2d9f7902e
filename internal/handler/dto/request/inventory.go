package request

import "webmall/internal/usecase/commands"

type UpsertInventoryRequest struct {
	Quantity  int32 `json:"quantity" binding:"gte=0"`
	Threshold int32 `json:"low_stock_threshold" binding:"gte=0"`
}

// AdjustInventoryRequest carries either an absolute quantity or a delta.
type AdjustInventoryRequest struct {
	Quantity *int32 `json:"quantity,omitempty"`
	Delta    *int32 `json:"delta,omitempty"`
}

func (r AdjustInventoryRequest) ToParams() commands.AdjustInventoryParams {
	return commands.AdjustInventoryParams{
		Quantity: r.Quantity,
		Delta:    r.Delta,
	}
}
