package queries

import (
	"context"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.New("product not found")

// ProductFilter narrows the public listing; zero values mean "no filter".
type ProductFilter struct {
	CategoryID *uuid.UUID
	Status     string
}

type ProductQueries interface {
	List(ctx context.Context, filter ProductFilter) ([]*ProductView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type ProductReadStore interface {
	List(ctx context.Context, filter ProductFilter) ([]*ProductView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type productQueriesImpl struct {
	readStore ProductReadStore
}

func NewProductQueries(readStore ProductReadStore) ProductQueries {
	return &productQueriesImpl{readStore: readStore}
}

func (q *productQueriesImpl) List(ctx context.Context, filter ProductFilter) ([]*ProductView, error) {
	return q.readStore.List(ctx, filter)
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}
