package queries

import (
	"context"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrOrderAccess   = errs.New("order access denied")
)

type OrderPage struct {
	Limit  int32
	Offset int32
}

type OrderQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
	ListAll(ctx context.Context, page OrderPage) ([]*OrderListItem, error)
	// GetByID enforces ownership: customers may only read their own orders,
	// admins read any (requesterID nil skips the check).
	GetByID(ctx context.Context, id uuid.UUID, requesterID *uuid.UUID) (*OrderView, error)
	ExportAll(ctx context.Context) ([]*OrderView, error)
}

type OrderReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
	ListAll(ctx context.Context, page OrderPage) ([]*OrderListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListAllDetailed(ctx context.Context) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error) {
	return q.readStore.ListByUser(ctx, userID)
}

func (q *orderQueriesImpl) ListAll(ctx context.Context, page OrderPage) ([]*OrderListItem, error) {
	if page.Limit <= 0 || page.Limit > 100 {
		page.Limit = 50
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return q.readStore.ListAll(ctx, page)
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, requesterID *uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if requesterID != nil && view.UserID != *requesterID {
		return nil, ErrOrderAccess
	}
	return view, nil
}

func (q *orderQueriesImpl) ExportAll(ctx context.Context) ([]*OrderView, error) {
	return q.readStore.ListAllDetailed(ctx)
}
