package commands

import (
	"context"

	"github.com/google/uuid"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"
	"webmall/internal/usecase/shared"
)

var ErrMessageNotFound = errs.New("message not found")

type MessageCommands interface {
	Create(ctx context.Context, p shared.CreateMessageParams) (uuid.UUID, error)
	Reply(ctx context.Context, id uuid.UUID, reply string) error
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type messageCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewMessageCommands(uow shared.UnitOfWork) MessageCommands {
	return &messageCommandsImpl{uow: uow}
}

func (c *messageCommandsImpl) Create(ctx context.Context, p shared.CreateMessageParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Messages().Create(ctx, tx.DB(), p)
		return txErr
	})
	return id, err
}

func (c *messageCommandsImpl) Reply(ctx context.Context, id uuid.UUID, reply string) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Messages().Reply(ctx, tx.DB(), id, reply)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrMessageNotFound
	}
	return err
}

func (c *messageCommandsImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Messages().MarkRead(ctx, tx.DB(), id)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrMessageNotFound
	}
	return err
}
