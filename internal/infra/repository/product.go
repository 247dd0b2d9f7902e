package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"webmall/internal/infra"
	"webmall/internal/infra/db"
	"webmall/internal/usecase/shared"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Create(ctx context.Context, dbtx db.DBTX, p shared.CreateProductParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
INSERT INTO products (name, description, price, category_id, subcategory_id, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`,
		p.Name, p.Description, p.Price, p.CategoryID, p.SubcategoryID, p.Status).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create product", err)
	}
	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, p shared.UpdateProductParams) error {
	tag, err := dbtx.Exec(ctx, `
UPDATE products
SET name = $2, description = $3, price = $4, category_id = $5, subcategory_id = $6,
    status = $7, updated_at = now()
WHERE id = $1`,
		id, p.Name, p.Description, p.Price, p.CategoryID, p.SubcategoryID, p.Status)
	if err != nil {
		return wrapWriteErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) SetImageURL(ctx context.Context, dbtx db.DBTX, id uuid.UUID, url string) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE products SET image_url = $2, updated_at = now() WHERE id = $1`, id, url)
	if err != nil {
		return wrapWriteErr("failed to set product image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

// LockForOrder acquires row locks in ID order so concurrent checkouts touching
// the same products cannot deadlock each other.
func (r *ProductRepository) LockForOrder(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) ([]shared.ProductSnapshot, error) {
	rows, err := dbtx.Query(ctx, `
SELECT id, name, price, status FROM products
WHERE id = ANY($1)
ORDER BY id
FOR UPDATE`, ids)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("products not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock products", err)
	}
	defer rows.Close()

	var res []shared.ProductSnapshot
	for rows.Next() {
		var s shared.ProductSnapshot
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product snapshot", err)
		}
		res = append(res, s)
	}
	return res, rows.Err()
}
