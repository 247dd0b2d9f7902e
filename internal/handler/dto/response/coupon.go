package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"webmall/internal/usecase/commands"
	"webmall/internal/usecase/queries"
)

type CouponResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue int64     `json:"discount_value"`
	UsageLimit    int32     `json:"usage_limit"`
	TimesUsed     int32     `json:"times_used"`
	MinimumOrder  int64     `json:"minimum_order"`
	ExpiresAt     time.Time `json:"expires_at"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	var resp CouponResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCouponList(views []*queries.CouponView) []*CouponResponse {
	res := make([]*CouponResponse, len(views))
	for i, v := range views {
		res[i] = FromCouponView(v)
	}
	return res
}

type CouponValidationResponse struct {
	Valid          bool  `json:"valid"`
	DiscountAmount int64 `json:"discount_amount"`
	FinalTotal     int64 `json:"final_total"`
}

func FromValidationResult(r *commands.ValidationResult) *CouponValidationResponse {
	return &CouponValidationResponse{
		Valid:          r.Valid,
		DiscountAmount: r.DiscountAmount,
		FinalTotal:     r.FinalTotal,
	}
}
