package request

import (
	"time"

	"webmall/internal/usecase/shared"
)

type CreateCouponRequest struct {
	Code          string    `json:"code" binding:"required,min=3,max=20"`
	DiscountType  string    `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue int64     `json:"discount_value" binding:"required,gt=0"`
	UsageLimit    int32     `json:"usage_limit" binding:"gte=0"`
	MinimumOrder  int64     `json:"minimum_order" binding:"gte=0"`
	ExpiresAt     time.Time `json:"expires_at" binding:"required"`
	Status        string    `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r CreateCouponRequest) ToParams() shared.CreateCouponParams {
	return shared.CreateCouponParams{
		Code:          r.Code,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		UsageLimit:    r.UsageLimit,
		MinimumOrder:  r.MinimumOrder,
		ExpiresAt:     r.ExpiresAt,
		Status:        r.Status,
	}
}

type UpdateCouponRequest struct {
	DiscountType  string    `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue int64     `json:"discount_value" binding:"required,gt=0"`
	UsageLimit    int32     `json:"usage_limit" binding:"gte=0"`
	MinimumOrder  int64     `json:"minimum_order" binding:"gte=0"`
	ExpiresAt     time.Time `json:"expires_at" binding:"required"`
	Status        string    `json:"status" binding:"required,oneof=active inactive"`
}

func (r UpdateCouponRequest) ToParams() shared.UpdateCouponParams {
	return shared.UpdateCouponParams{
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		UsageLimit:    r.UsageLimit,
		MinimumOrder:  r.MinimumOrder,
		ExpiresAt:     r.ExpiresAt,
		Status:        r.Status,
	}
}

type ValidateCouponRequest struct {
	Code       string `json:"code" binding:"required"`
	OrderTotal int64  `json:"order_total" binding:"required,gt=0"`
}
