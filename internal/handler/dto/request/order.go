package request

import (
	"strings"

	"github.com/google/uuid"

	"webmall/internal/usecase/commands"
)

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,gt=0"`
}

type PlaceOrderRequest struct {
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode *string            `json:"coupon_code,omitempty"`
}

func (r PlaceOrderRequest) ToParams(userID uuid.UUID) commands.PlaceOrderParams {
	items := make([]commands.PlaceOrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.PlaceOrderItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	var code *string
	if r.CouponCode != nil {
		if trimmed := strings.TrimSpace(*r.CouponCode); trimmed != "" {
			code = &trimmed
		}
	}

	return commands.PlaceOrderParams{
		UserID:     userID,
		Items:      items,
		CouponCode: code,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid shipped delivered cancelled"`
}
