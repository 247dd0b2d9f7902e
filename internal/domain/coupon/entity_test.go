//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"webmall/internal/domain/coupon"

	"github.com/google/uuid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func save10(t *testing.T, timesUsed int) *coupon.Coupon {
	t.Helper()
	code, err := coupon.NewCode("SAVE10")
	require.NoError(t, err)
	return coupon.Reconstruct(
		uuid.New(), code, coupon.DiscountPercentage, 10,
		5, timesUsed, 1000,
		testNow.Add(24*time.Hour), coupon.StatusActive,
		testNow, testNow,
	)
}

func TestNewCoupon(t *testing.T) {
	t.Run("upper-cases the code", func(t *testing.T) {
		c, err := coupon.NewCoupon("save10", "percentage", 10, 5, 1000, testNow.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", c.Code().String())
		assert.Equal(t, coupon.StatusActive, c.Status())
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		cases := []struct {
			name  string
			build func() error
			errIs error
		}{
			{
				name: "percentage above 100",
				build: func() error {
					_, err := coupon.NewCoupon("BIG", "percentage", 101, 0, 0, testNow)
					return err
				},
				errIs: coupon.ErrInvalidDiscountPercent,
			},
			{
				name: "zero value",
				build: func() error {
					_, err := coupon.NewCoupon("ZERO", "fixed", 0, 0, 0, testNow)
					return err
				},
				errIs: coupon.ErrInvalidDiscountValue,
			},
			{
				name: "negative value",
				build: func() error {
					_, err := coupon.NewCoupon("NEG", "percentage", -5, 0, 0, testNow)
					return err
				},
				errIs: coupon.ErrInvalidDiscountValue,
			},
			{
				name: "unknown type",
				build: func() error {
					_, err := coupon.NewCoupon("ODD", "bogo", 10, 0, 0, testNow)
					return err
				},
				errIs: coupon.ErrInvalidDiscountType,
			},
			{
				name: "bad code",
				build: func() error {
					_, err := coupon.NewCoupon("x", "fixed", 10, 0, 0, testNow)
					return err
				},
				errIs: coupon.ErrInvalidCouponCode,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.ErrorIs(t, tc.build(), tc.errIs)
			})
		}
	})
}

func TestValidateForOrder(t *testing.T) {
	t.Run("SAVE10 on a 2000 order passes and discounts 200", func(t *testing.T) {
		c := save10(t, 0)
		require.NoError(t, c.ValidateForOrder(2000, testNow))
		assert.Equal(t, int64(200), c.DiscountFor(2000))
	})

	t.Run("below minimum order carries the formatted message", func(t *testing.T) {
		c := save10(t, 0)
		err := c.ValidateForOrder(500, testNow)
		require.Error(t, err)
		var minErr *coupon.BelowMinimumError
		require.ErrorAs(t, err, &minErr)
		assert.Equal(t, "Minimum order of LKR 1,000 required for this coupon", err.Error())
	})

	t.Run("inactive beats expiry in check order", func(t *testing.T) {
		code, _ := coupon.NewCode("OLD")
		c := coupon.Reconstruct(uuid.New(), code, coupon.DiscountFixed, 100,
			0, 0, 0, testNow.Add(-time.Hour), coupon.StatusInactive, testNow, testNow)
		assert.ErrorIs(t, c.ValidateForOrder(5000, testNow), coupon.ErrCouponNotActive)
	})

	t.Run("expired", func(t *testing.T) {
		code, _ := coupon.NewCode("OLD")
		c := coupon.Reconstruct(uuid.New(), code, coupon.DiscountFixed, 100,
			0, 0, 0, testNow.Add(-time.Minute), coupon.StatusActive, testNow, testNow)
		assert.ErrorIs(t, c.ValidateForOrder(5000, testNow), coupon.ErrCouponExpired)
	})

	t.Run("usage limit reached", func(t *testing.T) {
		c := save10(t, 5)
		assert.ErrorIs(t, c.ValidateForOrder(2000, testNow), coupon.ErrUsageLimitReached)
	})

	t.Run("zero usage limit means unlimited", func(t *testing.T) {
		code, _ := coupon.NewCode("FOREVER")
		c := coupon.Reconstruct(uuid.New(), code, coupon.DiscountFixed, 50,
			0, 9999, 0, testNow.Add(time.Hour), coupon.StatusActive, testNow, testNow)
		assert.NoError(t, c.ValidateForOrder(100, testNow))
	})
}

func TestDiscountFor(t *testing.T) {
	t.Run("fixed discount clamps to the order total", func(t *testing.T) {
		code, _ := coupon.NewCode("BIGFIX")
		c := coupon.Reconstruct(uuid.New(), code, coupon.DiscountFixed, 5000,
			0, 0, 0, testNow.Add(time.Hour), coupon.StatusActive, testNow, testNow)
		assert.Equal(t, int64(300), c.DiscountFor(300))
	})

	t.Run("100 percent discounts the whole total", func(t *testing.T) {
		code, _ := coupon.NewCode("FREE")
		c := coupon.Reconstruct(uuid.New(), code, coupon.DiscountPercentage, 100,
			0, 0, 0, testNow.Add(time.Hour), coupon.StatusActive, testNow, testNow)
		assert.Equal(t, int64(777), c.DiscountFor(777))
	})

	t.Run("idempotent for unchanged state", func(t *testing.T) {
		c := save10(t, 0)
		first := c.DiscountFor(2000)
		second := c.DiscountFor(2000)
		assert.Equal(t, first, second)
	})
}
