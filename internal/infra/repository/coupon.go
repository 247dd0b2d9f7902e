package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"webmall/internal/infra"
	"webmall/internal/infra/db"
	"webmall/internal/usecase/shared"
)

type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

func (r *CouponRepository) Create(ctx context.Context, dbtx db.DBTX, p shared.CreateCouponParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
INSERT INTO coupons (code, discount_type, discount_value, usage_limit, minimum_order, expires_at, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`,
		p.Code, p.DiscountType, p.DiscountValue, p.UsageLimit, p.MinimumOrder, p.ExpiresAt, p.Status).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create coupon", err)
	}
	return id, nil
}

func (r *CouponRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, p shared.UpdateCouponParams) error {
	tag, err := dbtx.Exec(ctx, `
UPDATE coupons
SET discount_type = $2, discount_value = $3, usage_limit = $4, minimum_order = $5,
    expires_at = $6, status = $7, updated_at = now()
WHERE id = $1`,
		id, p.DiscountType, p.DiscountValue, p.UsageLimit, p.MinimumOrder, p.ExpiresAt, p.Status)
	if err != nil {
		return wrapWriteErr("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, dbtx db.DBTX, code string) (*shared.CouponSnapshot, error) {
	var s shared.CouponSnapshot
	err := dbtx.QueryRow(ctx, `
SELECT id, code, discount_type, discount_value, usage_limit, times_used,
       minimum_order, expires_at, status, created_at, updated_at
FROM coupons WHERE code = $1`, code).
		Scan(&s.ID, &s.Code, &s.DiscountType, &s.DiscountValue, &s.UsageLimit,
			&s.TimesUsed, &s.MinimumOrder, &s.ExpiresAt, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return &s, nil
}

// ConsumeUsage bumps times_used only while the limit is not yet reached.
// The condition lives in the UPDATE itself so two concurrent checkouts
// cannot both take the last redemption.
func (r *CouponRepository) ConsumeUsage(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
UPDATE coupons
SET times_used = times_used + 1, updated_at = now()
WHERE id = $1 AND (usage_limit = 0 OR times_used < usage_limit)`, id)
	if err != nil {
		return false, wrapWriteErr("failed to consume coupon usage", err)
	}
	return tag.RowsAffected() == 1, nil
}
