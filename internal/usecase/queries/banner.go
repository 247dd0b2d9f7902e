package queries

import (
	"context"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBannerNotFound = errs.New("banner not found")

type BannerQueries interface {
	ListActive(ctx context.Context) ([]*BannerView, error)
	ListAll(ctx context.Context) ([]*BannerView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BannerView, error)
}

type BannerReadStore interface {
	ListActive(ctx context.Context) ([]*BannerView, error)
	ListAll(ctx context.Context) ([]*BannerView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BannerView, error)
}

type bannerQueriesImpl struct {
	readStore BannerReadStore
}

func NewBannerQueries(readStore BannerReadStore) BannerQueries {
	return &bannerQueriesImpl{readStore: readStore}
}

func (q *bannerQueriesImpl) ListActive(ctx context.Context) ([]*BannerView, error) {
	return q.readStore.ListActive(ctx)
}

func (q *bannerQueriesImpl) ListAll(ctx context.Context) ([]*BannerView, error) {
	return q.readStore.ListAll(ctx)
}

func (q *bannerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BannerView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}
	return view, nil
}
