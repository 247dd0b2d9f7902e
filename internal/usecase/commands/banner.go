package commands

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"
	"webmall/internal/usecase/shared"
)

var ErrBannerNotFound = errs.New("banner not found")

type BannerCommands interface {
	Create(ctx context.Context, p shared.CreateBannerParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p shared.UpdateBannerParams) error
	Delete(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, id uuid.UUID, file *multipart.FileHeader) (string, error)
}

type bannerCommandsImpl struct {
	uow    shared.UnitOfWork
	images ImageStore
}

func NewBannerCommands(uow shared.UnitOfWork, images ImageStore) BannerCommands {
	return &bannerCommandsImpl{uow: uow, images: images}
}

func (c *bannerCommandsImpl) Create(ctx context.Context, p shared.CreateBannerParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Banners().Create(ctx, tx.DB(), p)
		return txErr
	})
	return id, err
}

func (c *bannerCommandsImpl) Update(ctx context.Context, id uuid.UUID, p shared.UpdateBannerParams) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Banners().Update(ctx, tx.DB(), id, p)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrBannerNotFound
	}
	return err
}

func (c *bannerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Banners().Delete(ctx, tx.DB(), id)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrBannerNotFound
	}
	return err
}

func (c *bannerCommandsImpl) UploadImage(ctx context.Context, id uuid.UUID, file *multipart.FileHeader) (string, error) {
	url, err := c.images.SaveImage(file)
	if err != nil {
		return "", err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Banners().SetImageURL(ctx, tx.DB(), id, url)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return "", ErrBannerNotFound
	}
	if err != nil {
		return "", err
	}
	return url, nil
}
