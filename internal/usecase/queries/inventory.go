package queries

import (
	"context"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInventoryNotFound = errs.New("inventory item not found")

type InventoryQueries interface {
	List(ctx context.Context) ([]*InventoryView, error)
	GetByProduct(ctx context.Context, productID uuid.UUID) (*InventoryView, error)
}

type InventoryReadStore interface {
	List(ctx context.Context) ([]*InventoryView, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) (*InventoryView, error)
}

type inventoryQueriesImpl struct {
	readStore InventoryReadStore
}

func NewInventoryQueries(readStore InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{readStore: readStore}
}

func (q *inventoryQueriesImpl) List(ctx context.Context) ([]*InventoryView, error) {
	return q.readStore.List(ctx)
}

func (q *inventoryQueriesImpl) GetByProduct(ctx context.Context, productID uuid.UUID) (*InventoryView, error) {
	view, err := q.readStore.FindByProduct(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	return view, nil
}
