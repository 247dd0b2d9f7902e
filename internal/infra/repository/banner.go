package repository

import (
	"context"

	"github.com/google/uuid"

	"webmall/internal/infra"
	"webmall/internal/infra/db"
	"webmall/internal/usecase/shared"
)

type BannerRepository struct{}

func NewBannerRepository() *BannerRepository {
	return &BannerRepository{}
}

func (r *BannerRepository) Create(ctx context.Context, dbtx db.DBTX, p shared.CreateBannerParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
INSERT INTO banners (title, subtitle, link_url, position, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`,
		p.Title, p.Subtitle, p.LinkURL, p.Position, p.IsActive).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create banner", err)
	}
	return id, nil
}

func (r *BannerRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, p shared.UpdateBannerParams) error {
	tag, err := dbtx.Exec(ctx, `
UPDATE banners
SET title = $2, subtitle = $3, link_url = $4, position = $5, is_active = $6, updated_at = now()
WHERE id = $1`,
		id, p.Title, p.Subtitle, p.LinkURL, p.Position, p.IsActive)
	if err != nil {
		return wrapWriteErr("failed to update banner", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BannerRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete banner", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BannerRepository) SetImageURL(ctx context.Context, dbtx db.DBTX, id uuid.UUID, url string) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE banners SET image_url = $2, updated_at = now() WHERE id = $1`, id, url)
	if err != nil {
		return wrapWriteErr("failed to set banner image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	return nil
}
