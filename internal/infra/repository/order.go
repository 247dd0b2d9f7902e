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

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, dbtx db.DBTX, p shared.CreateOrderParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
INSERT INTO orders (number, user_id, subtotal, coupon_code, discount_amount, total, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`,
		p.Number, p.UserID, p.Subtotal, p.CouponCode, p.DiscountAmount, p.Total, p.Status).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create order", err)
	}

	for _, item := range p.Items {
		_, err := dbtx.Exec(ctx, `
INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5)`,
			id, item.ProductID, item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			return uuid.Nil, wrapWriteErr("failed to create order item", err)
		}
	}
	return id, nil
}

func (r *OrderRepository) StatusByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (string, error) {
	var status string
	err := dbtx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to read order status", err)
	}
	return status, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status string) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return wrapWriteErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
