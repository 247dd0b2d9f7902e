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

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

const productColumns = `id, name, description, price, category_id, subcategory_id, image_url, status, created_at, updated_at`

func (r *ProductReadStore) List(ctx context.Context, filter queries.ProductFilter) ([]*queries.ProductView, error) {
	sql := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		sql += ` AND (category_id = $1 OR subcategory_id = $1)`
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		if len(args) == 1 {
			sql += ` AND status = $1`
		} else {
			sql += ` AND status = $2`
		}
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var res []*queries.ProductView
	for rows.Next() {
		v, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		res = append(res, v)
	}
	return res, rows.Err()
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	v, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return v, nil
}

func scanProduct(row pgx.Row) (*queries.ProductView, error) {
	var v queries.ProductView
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Price, &v.CategoryID,
		&v.SubcategoryID, &v.ImageURL, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
