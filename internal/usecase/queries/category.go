package queries

import (
	"context"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCategoryNotFound = errs.New("category not found")

type CategoryQueries interface {
	List(ctx context.Context) ([]*CategoryView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
}

type CategoryReadStore interface {
	List(ctx context.Context) ([]*CategoryView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
}

type categoryQueriesImpl struct {
	readStore CategoryReadStore
}

func NewCategoryQueries(readStore CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{readStore: readStore}
}

func (q *categoryQueriesImpl) List(ctx context.Context) ([]*CategoryView, error) {
	return q.readStore.List(ctx)
}

func (q *categoryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return view, nil
}
