package queries

import (
	"context"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMessageNotFound = errs.New("message not found")

type MessageQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*MessageView, error)
	ListAll(ctx context.Context) ([]*MessageView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MessageView, error)
}

type MessageReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*MessageView, error)
	ListAll(ctx context.Context) ([]*MessageView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MessageView, error)
}

type messageQueriesImpl struct {
	readStore MessageReadStore
}

func NewMessageQueries(readStore MessageReadStore) MessageQueries {
	return &messageQueriesImpl{readStore: readStore}
}

func (q *messageQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*MessageView, error) {
	return q.readStore.ListByUser(ctx, userID)
}

func (q *messageQueriesImpl) ListAll(ctx context.Context) ([]*MessageView, error) {
	return q.readStore.ListAll(ctx)
}

func (q *messageQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MessageView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return view, nil
}
