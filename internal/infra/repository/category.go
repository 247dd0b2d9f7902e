package repository

import (
	"context"

	"github.com/google/uuid"

	"webmall/internal/infra"
	"webmall/internal/infra/db"
	"webmall/internal/usecase/shared"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Create(ctx context.Context, dbtx db.DBTX, p shared.CreateCategoryParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
INSERT INTO categories (name, slug, parent_id)
VALUES ($1, $2, $3)
RETURNING id`,
		p.Name, p.Slug, p.ParentID).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create category", err)
	}
	return id, nil
}

func (r *CategoryRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, p shared.UpdateCategoryParams) error {
	tag, err := dbtx.Exec(ctx, `
UPDATE categories SET name = $2, slug = $3, parent_id = $4, updated_at = now()
WHERE id = $1`,
		id, p.Name, p.Slug, p.ParentID)
	if err != nil {
		return wrapWriteErr("failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}
