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

type CategoryReadStore struct {
	db db.DBTX
}

func NewCategoryReadStore(dbtx db.DBTX) *CategoryReadStore {
	return &CategoryReadStore{db: dbtx}
}

const categoryColumns = `id, name, slug, parent_id, created_at, updated_at`

func (r *CategoryReadStore) List(ctx context.Context) ([]*queries.CategoryView, error) {
	// Parents first so clients can build the tree in one pass.
	rows, err := r.db.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY parent_id NULLS FIRST, name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	var res []*queries.CategoryView
	for rows.Next() {
		var v queries.CategoryView
		if err := rows.Scan(&v.ID, &v.Name, &v.Slug, &v.ParentID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category row", err)
		}
		res = append(res, &v)
	}
	return res, rows.Err()
}

func (r *CategoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	var v queries.CategoryView
	err := r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Slug, &v.ParentID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category by ID", err)
	}
	return &v, nil
}
