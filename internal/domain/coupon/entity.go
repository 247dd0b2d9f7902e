package coupon

import (
	"errors"
	"fmt"
	"time"

	"webmall/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrCouponNotActive       = errors.New("Coupon is not active")
	ErrCouponExpired         = errors.New("Coupon has expired")
	ErrUsageLimitReached     = errors.New("Coupon usage limit reached")
	ErrInvalidMinimumOrder   = errors.New("minimum order cannot be negative")
	ErrInvalidUsageLimit     = errors.New("usage limit cannot be negative")
	ErrDiscountExceedsLimits = errors.New("fixed discount cannot be negative")
)

// BelowMinimumError carries the formatted user-facing message, e.g.
// "Minimum order of LKR 1,000 required for this coupon".
type BelowMinimumError struct {
	Minimum int64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("Minimum order of %s required for this coupon", money.FormatLKR(e.Minimum))
}

type Coupon struct {
	id            uuid.UUID
	code          Code
	discountType  DiscountType
	discountValue int64
	usageLimit    int
	timesUsed     int
	minimumOrder  int64
	expiresAt     time.Time
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewCoupon(
	code string,
	discountType string,
	discountValue int64,
	usageLimit int,
	minimumOrder int64,
	expiresAt time.Time,
) (*Coupon, error) {
	c, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	dt, err := NewDiscountType(discountType)
	if err != nil {
		return nil, err
	}
	if err := ValidateDiscount(dt, discountValue); err != nil {
		return nil, err
	}
	if usageLimit < 0 {
		return nil, ErrInvalidUsageLimit
	}
	if minimumOrder < 0 {
		return nil, ErrInvalidMinimumOrder
	}

	return &Coupon{
		id:            uuid.New(),
		code:          c,
		discountType:  dt,
		discountValue: discountValue,
		usageLimit:    usageLimit,
		minimumOrder:  minimumOrder,
		expiresAt:     expiresAt,
		status:        StatusActive,
	}, nil
}

// Reconstruct rebuilds a coupon from a stored row without re-running creation
// validation (the row already passed it).
func Reconstruct(
	id uuid.UUID,
	code Code,
	discountType DiscountType,
	discountValue int64,
	usageLimit int,
	timesUsed int,
	minimumOrder int64,
	expiresAt time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:            id,
		code:          code,
		discountType:  discountType,
		discountValue: discountValue,
		usageLimit:    usageLimit,
		timesUsed:     timesUsed,
		minimumOrder:  minimumOrder,
		expiresAt:     expiresAt,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ValidateDiscount checks a type/value pair; percentage values are capped
// at 100.
func ValidateDiscount(dt DiscountType, value int64) error {
	if value <= 0 {
		return ErrInvalidDiscountValue
	}
	if dt == DiscountPercentage && value > 100 {
		return ErrInvalidDiscountPercent
	}
	return nil
}

// ValidateForOrder runs the redemption checks in their required order:
// status, expiry, usage, minimum. Each failure short-circuits with its own
// error so callers surface distinct messages. Existence is the caller's
// concern (lookup happens before a Coupon exists).
func (c *Coupon) ValidateForOrder(orderTotal int64, now time.Time) error {
	if c.status != StatusActive {
		return ErrCouponNotActive
	}
	if now.After(c.expiresAt) {
		return ErrCouponExpired
	}
	if c.usageLimit > 0 && c.timesUsed >= c.usageLimit {
		return ErrUsageLimitReached
	}
	if orderTotal < c.minimumOrder {
		return &BelowMinimumError{Minimum: c.minimumOrder}
	}
	return nil
}

// DiscountFor computes the discount for orderTotal, clamped so the discount
// never exceeds the total.
func (c *Coupon) DiscountFor(orderTotal int64) int64 {
	var discount int64
	switch c.discountType {
	case DiscountPercentage:
		discount = orderTotal * c.discountValue / 100
	case DiscountFixed:
		discount = c.discountValue
	}
	if discount > orderTotal {
		return orderTotal
	}
	return discount
}

func (c *Coupon) ID() uuid.UUID              { return c.id }
func (c *Coupon) Code() Code                 { return c.code }
func (c *Coupon) DiscountType() DiscountType { return c.discountType }
func (c *Coupon) DiscountValue() int64       { return c.discountValue }
func (c *Coupon) UsageLimit() int            { return c.usageLimit }
func (c *Coupon) TimesUsed() int             { return c.timesUsed }
func (c *Coupon) MinimumOrder() int64        { return c.minimumOrder }
func (c *Coupon) ExpiresAt() time.Time       { return c.expiresAt }
func (c *Coupon) Status() Status             { return c.status }
func (c *Coupon) CreatedAt() time.Time       { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time       { return c.updatedAt }
