package commands

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"
	"webmall/internal/usecase/shared"
)

var (
	ErrProductNotFound    = errs.New("product not found")
	ErrProductHasOrders   = errs.New("product is referenced by orders")
	ErrInvalidCategoryRef = errs.New("category does not exist")
)

type ProductCommands interface {
	Create(ctx context.Context, p shared.CreateProductParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p shared.UpdateProductParams) error
	Delete(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, id uuid.UUID, file *multipart.FileHeader) (string, error)
}

type productCommandsImpl struct {
	uow    shared.UnitOfWork
	images ImageStore
}

func NewProductCommands(uow shared.UnitOfWork, images ImageStore) ProductCommands {
	return &productCommandsImpl{uow: uow, images: images}
}

func (c *productCommandsImpl) Create(ctx context.Context, p shared.CreateProductParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Products().Create(ctx, tx.DB(), p)
		if txErr != nil {
			return txErr
		}
		// Every product carries an inventory row from birth.
		return tx.Inventory().Upsert(ctx, tx.DB(), id, 0, 5)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, ErrInvalidCategoryRef
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *productCommandsImpl) Update(ctx context.Context, id uuid.UUID, p shared.UpdateProductParams) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Update(ctx, tx.DB(), id, p)
	})
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrProductNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrInvalidCategoryRef
	}
	return err
}

func (c *productCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Delete(ctx, tx.DB(), id)
	})
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrProductNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrProductHasOrders
	}
	return err
}

func (c *productCommandsImpl) UploadImage(ctx context.Context, id uuid.UUID, file *multipart.FileHeader) (string, error) {
	url, err := c.images.SaveImage(file)
	if err != nil {
		return "", err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().SetImageURL(ctx, tx.DB(), id, url)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return "", ErrProductNotFound
	}
	if err != nil {
		return "", err
	}
	return url, nil
}
