package readstore

import (
	"context"

	"webmall/internal/infra"
	"webmall/internal/infra/db"
	"webmall/internal/usecase/queries"
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx}
}

// Summary aggregates the dashboard counters in a single round trip,
// then attaches the five most recent orders. Cancelled orders are
// excluded from revenue but still counted.
func (r *ReportReadStore) Summary(ctx context.Context) (*queries.ReportSummary, error) {
	var s queries.ReportSummary
	err := r.db.QueryRow(ctx, `
SELECT
  (SELECT count(*) FROM orders),
  (SELECT coalesce(sum(total), 0) FROM orders WHERE status <> 'cancelled'),
  (SELECT count(*) FROM users WHERE role = 'customer'),
  (SELECT count(*) FROM products),
  (SELECT count(*) FROM inventory WHERE quantity <= low_stock_threshold)`).
		Scan(&s.TotalOrders, &s.TotalRevenue, &s.TotalCustomers, &s.TotalProducts, &s.LowStockCount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate report summary", err)
	}

	rows, err := r.db.Query(ctx, orderListSelect+` ORDER BY o.created_at DESC LIMIT 5`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent orders", err)
	}
	defer rows.Close()

	recent, err := collectOrderList(rows)
	if err != nil {
		return nil, err
	}
	s.RecentOrders = make([]queries.OrderListItem, 0, len(recent))
	for _, o := range recent {
		s.RecentOrders = append(s.RecentOrders, *o)
	}
	return &s, nil
}
