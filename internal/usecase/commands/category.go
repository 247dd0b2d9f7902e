package commands

import (
	"context"

	"github.com/google/uuid"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"
	"webmall/internal/usecase/shared"
)

var (
	ErrCategoryNotFound  = errs.New("category not found")
	ErrCategorySlugTaken = errs.New("category slug already in use")
	ErrCategoryInUse     = errs.New("category still has products or children")
)

type CategoryCommands interface {
	Create(ctx context.Context, p shared.CreateCategoryParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p shared.UpdateCategoryParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCategoryCommands(uow shared.UnitOfWork) CategoryCommands {
	return &categoryCommandsImpl{uow: uow}
}

func (c *categoryCommandsImpl) Create(ctx context.Context, p shared.CreateCategoryParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Categories().Create(ctx, tx.DB(), p)
		return txErr
	})
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return uuid.Nil, ErrCategorySlugTaken
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return uuid.Nil, ErrCategoryNotFound
	}
	return id, err
}

func (c *categoryCommandsImpl) Update(ctx context.Context, id uuid.UUID, p shared.UpdateCategoryParams) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Update(ctx, tx.DB(), id, p)
	})
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrCategoryNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrCategorySlugTaken
	}
	return err
}

func (c *categoryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Delete(ctx, tx.DB(), id)
	})
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrCategoryNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrCategoryInUse
	}
	return err
}
