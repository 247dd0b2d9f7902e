package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"webmall/internal/infra"
	"webmall/internal/infra/db"
	"webmall/internal/usecase/queries"
)

type BannerReadStore struct {
	db db.DBTX
}

func NewBannerReadStore(dbtx db.DBTX) *BannerReadStore {
	return &BannerReadStore{db: dbtx}
}

const bannerColumns = `id, title, subtitle, image_url, link_url, position, is_active, created_at, updated_at`

func (r *BannerReadStore) ListActive(ctx context.Context) ([]*queries.BannerView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bannerColumns+` FROM banners WHERE is_active ORDER BY position`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active banners", err)
	}
	defer rows.Close()
	return collectBanners(rows)
}

func (r *BannerReadStore) ListAll(ctx context.Context) ([]*queries.BannerView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bannerColumns+` FROM banners ORDER BY position`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list banners", err)
	}
	defer rows.Close()
	return collectBanners(rows)
}

func (r *BannerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BannerView, error) {
	var v queries.BannerView
	err := r.db.QueryRow(ctx,
		`SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id).
		Scan(&v.ID, &v.Title, &v.Subtitle, &v.ImageURL, &v.LinkURL, &v.Position, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("banner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find banner by ID", err)
	}
	return &v, nil
}

func collectBanners(rows pgx.Rows) ([]*queries.BannerView, error) {
	var res []*queries.BannerView
	for rows.Next() {
		var v queries.BannerView
		if err := rows.Scan(&v.ID, &v.Title, &v.Subtitle, &v.ImageURL, &v.LinkURL, &v.Position, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan banner row", err)
		}
		res = append(res, &v)
	}
	return res, rows.Err()
}
