package response

import (
	"time"

	"github.com/google/uuid"

	"webmall/internal/usecase/commands"
	"webmall/internal/usecase/queries"
)

type OrderItemResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int32     `json:"quantity"`
}

type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	Number         string              `json:"number"`
	UserID         uuid.UUID           `json:"user_id"`
	UserEmail      string              `json:"user_email"`
	Items          []OrderItemResponse `json:"items"`
	Subtotal       int64               `json:"subtotal"`
	CouponCode     *string             `json:"coupon_code,omitempty"`
	DiscountAmount int64               `json:"discount_amount"`
	Total          int64               `json:"total"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = OrderItemResponse(it)
	}
	return &OrderResponse{
		ID:             v.ID,
		Number:         v.Number,
		UserID:         v.UserID,
		UserEmail:      v.UserEmail,
		Items:          items,
		Subtotal:       v.Subtotal,
		CouponCode:     v.CouponCode,
		DiscountAmount: v.DiscountAmount,
		Total:          v.Total,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
	}
}

type OrderListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	UserEmail string    `json:"user_email"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromOrderList(items []*queries.OrderListItem) []*OrderListItemResponse {
	res := make([]*OrderListItemResponse, len(items))
	for i, it := range items {
		r := OrderListItemResponse(*it)
		res[i] = &r
	}
	return res
}

type PlacedOrderResponse struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	Subtotal       int64     `json:"subtotal"`
	DiscountAmount int64     `json:"discount_amount"`
	Total          int64     `json:"total"`
}

func FromPlacedOrder(p *commands.PlacedOrder) *PlacedOrderResponse {
	return &PlacedOrderResponse{
		ID:             p.ID,
		Number:         p.Number,
		Subtotal:       p.Subtotal,
		DiscountAmount: p.DiscountAmount,
		Total:          p.Total,
	}
}
