package response

import "webmall/internal/usecase/queries"

type ReportSummaryResponse struct {
	TotalOrders    int64                    `json:"total_orders"`
	TotalRevenue   int64                    `json:"total_revenue"`
	TotalCustomers int64                    `json:"total_customers"`
	TotalProducts  int64                    `json:"total_products"`
	LowStockCount  int64                    `json:"low_stock_count"`
	RecentOrders   []*OrderListItemResponse `json:"recent_orders"`
}

func FromReportSummary(s *queries.ReportSummary) *ReportSummaryResponse {
	recent := make([]*OrderListItemResponse, len(s.RecentOrders))
	for i := range s.RecentOrders {
		r := OrderListItemResponse(s.RecentOrders[i])
		recent[i] = &r
	}
	return &ReportSummaryResponse{
		TotalOrders:    s.TotalOrders,
		TotalRevenue:   s.TotalRevenue,
		TotalCustomers: s.TotalCustomers,
		TotalProducts:  s.TotalProducts,
		LowStockCount:  s.LowStockCount,
		RecentOrders:   recent,
	}
}
