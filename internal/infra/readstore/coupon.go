package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"webmall/internal/infra"
	"webmall/internal/infra/db"
	"webmall/internal/usecase/queries"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

const couponColumns = `id, code, discount_type, discount_value, usage_limit, times_used, minimum_order, expires_at, status, created_at, updated_at`

func (r *CouponReadStore) List(ctx context.Context) ([]*queries.CouponView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var res []*queries.CouponView
	for rows.Next() {
		v, err := scanCoupon(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		res = append(res, v)
	}
	return res, rows.Err()
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id)
	v, err := scanCoupon(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return v, nil
}

func scanCoupon(row pgx.Row) (*queries.CouponView, error) {
	var v queries.CouponView
	err := row.Scan(&v.ID, &v.Code, &v.DiscountType, &v.DiscountValue, &v.UsageLimit,
		&v.TimesUsed, &v.MinimumOrder, &v.ExpiresAt, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
