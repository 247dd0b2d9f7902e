package queries

import (
	"context"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCouponNotFound = errs.New("coupon not found")

type CouponQueries interface {
	List(ctx context.Context) ([]*CouponView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
}

type CouponReadStore interface {
	List(ctx context.Context) ([]*CouponView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

func (q *couponQueriesImpl) List(ctx context.Context) ([]*CouponView, error) {
	return q.readStore.List(ctx)
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}
