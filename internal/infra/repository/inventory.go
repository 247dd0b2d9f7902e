package repository

import (
	"context"

	"github.com/google/uuid"

	"webmall/internal/infra"
	"webmall/internal/infra/db"
)

type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

func (r *InventoryRepository) Upsert(ctx context.Context, dbtx db.DBTX, productID uuid.UUID, quantity int32, threshold int32) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO inventory (product_id, quantity, low_stock_threshold)
VALUES ($1, $2, $3)
ON CONFLICT (product_id) DO UPDATE
SET quantity = EXCLUDED.quantity, low_stock_threshold = EXCLUDED.low_stock_threshold, updated_at = now()`,
		productID, quantity, threshold)
	if err != nil {
		return wrapWriteErr("failed to upsert inventory", err)
	}
	return nil
}

func (r *InventoryRepository) SetQuantity(ctx context.Context, dbtx db.DBTX, productID uuid.UUID, quantity int32) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE inventory SET quantity = $2, updated_at = now() WHERE product_id = $1`,
		productID, quantity)
	if err != nil {
		return wrapWriteErr("failed to set inventory quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inventory item not found", nil, infra.KindNotFound)
	}
	return nil
}

// AdjustQuantity applies the delta in one conditional UPDATE so stock can
// never be driven below zero by concurrent checkouts.
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, dbtx db.DBTX, productID uuid.UUID, delta int32) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
UPDATE inventory
SET quantity = quantity + $2, updated_at = now()
WHERE product_id = $1 AND quantity + $2 >= 0`,
		productID, delta)
	if err != nil {
		return false, wrapWriteErr("failed to adjust inventory quantity", err)
	}
	return tag.RowsAffected() == 1, nil
}
