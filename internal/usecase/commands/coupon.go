package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"webmall/internal/domain/coupon"
	"webmall/internal/infra"
	"webmall/internal/pkg/clock"
	"webmall/internal/pkg/errs"
	"webmall/internal/usecase/shared"
)

var (
	ErrCouponNotFound  = errs.New("Coupon not found")
	ErrCouponCodeTaken = errs.New("coupon code already exists")
)

// ValidationResult is the outcome of a pre-checkout coupon check.
type ValidationResult struct {
	Valid          bool
	DiscountAmount int64
	FinalTotal     int64
}

type CouponCommands interface {
	Create(ctx context.Context, p shared.CreateCouponParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p shared.UpdateCouponParams) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Validate runs the redemption checks without consuming usage. A failed
	// check returns the domain error carrying the user-facing message.
	Validate(ctx context.Context, code string, orderTotal int64) (*ValidationResult, error)
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, clock: clk}
}

func (c *couponCommandsImpl) Create(ctx context.Context, p shared.CreateCouponParams) (uuid.UUID, error) {
	// Creation validation happens in the domain; the row stores the
	// normalized code.
	dc, err := coupon.NewCoupon(p.Code, p.DiscountType, p.DiscountValue, int(p.UsageLimit), p.MinimumOrder, p.ExpiresAt)
	if err != nil {
		return uuid.Nil, err
	}
	p.Code = dc.Code().String()
	if p.Status == "" {
		p.Status = dc.Status().String()
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Coupons().Create(ctx, tx.DB(), p)
		return txErr
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return uuid.Nil, ErrCouponCodeTaken
	}
	return id, err
}

func (c *couponCommandsImpl) Update(ctx context.Context, id uuid.UUID, p shared.UpdateCouponParams) error {
	dt, err := coupon.NewDiscountType(p.DiscountType)
	if err != nil {
		return err
	}
	if _, err := coupon.NewStatus(p.Status); err != nil {
		return err
	}
	if err := coupon.ValidateDiscount(dt, p.DiscountValue); err != nil {
		return err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Update(ctx, tx.DB(), id, p)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrCouponNotFound
	}
	return err
}

func (c *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Delete(ctx, tx.DB(), id)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrCouponNotFound
	}
	return err
}

func (c *couponCommandsImpl) Validate(ctx context.Context, code string, orderTotal int64) (*ValidationResult, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, ErrCouponNotFound
	}

	snap, err := c.uow.CommandReads().CouponByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	dc, err := snapshotToCoupon(snap)
	if err != nil {
		return nil, ErrCouponNotFound
	}

	if err := dc.ValidateForOrder(orderTotal, c.clock.Now()); err != nil {
		return nil, err
	}

	discount := dc.DiscountFor(orderTotal)
	return &ValidationResult{
		Valid:          true,
		DiscountAmount: discount,
		FinalTotal:     orderTotal - discount,
	}, nil
}

func snapshotToCoupon(s *shared.CouponSnapshot) (*coupon.Coupon, error) {
	code, err := coupon.NewCode(s.Code)
	if err != nil {
		return nil, err
	}
	dt, err := coupon.NewDiscountType(s.DiscountType)
	if err != nil {
		return nil, err
	}
	status, err := coupon.NewStatus(s.Status)
	if err != nil {
		return nil, err
	}
	return coupon.Reconstruct(s.ID, code, dt, s.DiscountValue, int(s.UsageLimit), int(s.TimesUsed),
		s.MinimumOrder, s.ExpiresAt, status, s.CreatedAt, s.UpdatedAt), nil
}

// IsCouponRejection reports whether err is one of the per-check redemption
// failures (as opposed to a lookup or infrastructure fault).
func IsCouponRejection(err error) bool {
	var belowMin *coupon.BelowMinimumError
	return errors.Is(err, coupon.ErrCouponNotActive) ||
		errors.Is(err, coupon.ErrCouponExpired) ||
		errors.Is(err, coupon.ErrUsageLimitReached) ||
		errors.As(err, &belowMin)
}
