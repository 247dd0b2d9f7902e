package queries

import (
	"time"

	"github.com/google/uuid"
)

// ProductView represents read-optimized product data
type ProductView struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         int64      `json:"price"`
	CategoryID    uuid.UUID  `json:"category_id"`
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CategoryView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CouponView struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue int64     `json:"discount_value"`
	UsageLimit    int32     `json:"usage_limit"`
	TimesUsed     int32     `json:"times_used"`
	MinimumOrder  int64     `json:"minimum_order"`
	ExpiresAt     time.Time `json:"expires_at"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type InventoryView struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int32     `json:"quantity"`
	Threshold   int32     `json:"low_stock_threshold"`
	LowStock    bool      `json:"low_stock"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OrderItemView struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int32     `json:"quantity"`
}

type OrderView struct {
	ID             uuid.UUID       `json:"id"`
	Number         string          `json:"number"`
	UserID         uuid.UUID       `json:"user_id"`
	UserEmail      string          `json:"user_email"`
	Items          []OrderItemView `json:"items"`
	Subtotal       int64           `json:"subtotal"`
	CouponCode     *string         `json:"coupon_code,omitempty"`
	DiscountAmount int64           `json:"discount_amount"`
	Total          int64           `json:"total"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

type OrderListItem struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	UserEmail string    `json:"user_email"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Reply     *string   `json:"reply,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BannerView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  *string   `json:"image_url,omitempty"`
	LinkURL   string    `json:"link_url"`
	Position  int32     `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReportSummary is the admin dashboard snapshot.
type ReportSummary struct {
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   int64           `json:"total_revenue"`
	TotalCustomers int64           `json:"total_customers"`
	TotalProducts  int64           `json:"total_products"`
	LowStockCount  int64           `json:"low_stock_count"`
	RecentOrders   []OrderListItem `json:"recent_orders"`
}
