package shared

import (
	"time"

	"webmall/internal/domain/user"

	"github.com/google/uuid"
)

// AuthenticatedUser is the merged identity view the role gate works with:
// provider-confirmed email and verification flag, locally authoritative role
// and name.
type AuthenticatedUser struct {
	ID            uuid.UUID
	Subject       uuid.UUID
	Email         string
	Name          string
	Role          user.Role
	EmailVerified bool
}

// Minimal snapshots for command read operations

type ProductSnapshot struct {
	ID     uuid.UUID
	Name   string
	Price  int64
	Status string
}

type CouponSnapshot struct {
	ID            uuid.UUID
	Code          string
	DiscountType  string
	DiscountValue int64
	UsageLimit    int32
	TimesUsed     int32
	MinimumOrder  int64
	ExpiresAt     time.Time
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Write parameters

type CreateProductParams struct {
	Name          string
	Description   string
	Price         int64
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Status        string
}

type UpdateProductParams struct {
	Name          string
	Description   string
	Price         int64
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Status        string
}

type CreateCategoryParams struct {
	Name     string
	Slug     string
	ParentID *uuid.UUID
}

type UpdateCategoryParams struct {
	Name     string
	Slug     string
	ParentID *uuid.UUID
}

type CreateCouponParams struct {
	Code          string
	DiscountType  string
	DiscountValue int64
	UsageLimit    int32
	MinimumOrder  int64
	ExpiresAt     time.Time
	Status        string
}

type UpdateCouponParams struct {
	DiscountType  string
	DiscountValue int64
	UsageLimit    int32
	MinimumOrder  int64
	ExpiresAt     time.Time
	Status        string
}

type CreateOrderParams struct {
	Number         string
	UserID         uuid.UUID
	Items          []OrderItemParams
	Subtotal       int64
	CouponCode     *string
	DiscountAmount int64
	Total          int64
	Status         string
}

type OrderItemParams struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice int64
	Quantity  int32
}

type CreateMessageParams struct {
	UserID  uuid.UUID
	Subject string
	Body    string
}

type CreateBannerParams struct {
	Title    string
	Subtitle string
	LinkURL  string
	Position int32
	IsActive bool
}

type UpdateBannerParams struct {
	Title    string
	Subtitle string
	LinkURL  string
	Position int32
	IsActive bool
}
