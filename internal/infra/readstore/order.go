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

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const orderListSelect = `
SELECT o.id, o.number, u.email, o.total, o.status, o.created_at
FROM orders o
JOIN users u ON u.id = o.user_id`

const orderHeadSelect = `
SELECT o.id, o.number, o.user_id, u.email, o.subtotal, o.coupon_code,
       o.discount_amount, o.total, o.status, o.created_at
FROM orders o
JOIN users u ON u.id = o.user_id`

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx,
		orderListSelect+` WHERE o.user_id = $1 ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	defer rows.Close()
	return collectOrderList(rows)
}

func (r *OrderReadStore) ListAll(ctx context.Context, page queries.OrderPage) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx,
		orderListSelect+` ORDER BY o.created_at DESC LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()
	return collectOrderList(rows)
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, orderHeadSelect+` WHERE o.id = $1`, id)
	view, err := scanOrderHead(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	items, err := r.itemsFor(ctx, []uuid.UUID{view.ID})
	if err != nil {
		return nil, err
	}
	view.Items = items[view.ID]
	return view, nil
}

// ListAllDetailed loads every order with its line items, newest first.
// Used by the back-office export, so no paging.
func (r *OrderReadStore) ListAllDetailed(ctx context.Context) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, orderHeadSelect+` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders for export", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	var ids []uuid.UUID
	for rows.Next() {
		v, err := scanOrderHead(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	if len(ids) == 0 {
		return views, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Items = items[v.ID]
	}
	return views, nil
}

func (r *OrderReadStore) itemsFor(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]queries.OrderItemView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT order_id, product_id, product_name, unit_price, quantity
		 FROM order_items WHERE order_id = ANY($1) ORDER BY product_name`, orderIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	res := make(map[uuid.UUID][]queries.OrderItemView, len(orderIDs))
	for rows.Next() {
		var orderID uuid.UUID
		var item queries.OrderItemView
		if err := rows.Scan(&orderID, &item.ProductID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item row", err)
		}
		res[orderID] = append(res[orderID], item)
	}
	return res, rows.Err()
}

func collectOrderList(rows pgx.Rows) ([]*queries.OrderListItem, error) {
	var res []*queries.OrderListItem
	for rows.Next() {
		var v queries.OrderListItem
		if err := rows.Scan(&v.ID, &v.Number, &v.UserEmail, &v.Total, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		res = append(res, &v)
	}
	return res, rows.Err()
}

func scanOrderHead(row pgx.Row) (*queries.OrderView, error) {
	var v queries.OrderView
	err := row.Scan(&v.ID, &v.Number, &v.UserID, &v.UserEmail, &v.Subtotal,
		&v.CouponCode, &v.DiscountAmount, &v.Total, &v.Status, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
