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

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

const inventorySelect = `
SELECT i.product_id, p.name, i.quantity, i.low_stock_threshold,
       i.quantity <= i.low_stock_threshold AS low_stock, i.updated_at
FROM inventory i
JOIN products p ON p.id = i.product_id`

func (r *InventoryReadStore) List(ctx context.Context) ([]*queries.InventoryView, error) {
	rows, err := r.db.Query(ctx, inventorySelect+` ORDER BY p.name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory", err)
	}
	defer rows.Close()

	var res []*queries.InventoryView
	for rows.Next() {
		var v queries.InventoryView
		if err := rows.Scan(&v.ProductID, &v.ProductName, &v.Quantity, &v.Threshold, &v.LowStock, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory row", err)
		}
		res = append(res, &v)
	}
	return res, rows.Err()
}

func (r *InventoryReadStore) FindByProduct(ctx context.Context, productID uuid.UUID) (*queries.InventoryView, error) {
	var v queries.InventoryView
	err := r.db.QueryRow(ctx, inventorySelect+` WHERE i.product_id = $1`, productID).
		Scan(&v.ProductID, &v.ProductName, &v.Quantity, &v.Threshold, &v.LowStock, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("inventory item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inventory by product", err)
	}
	return &v, nil
}
