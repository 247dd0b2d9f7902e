package shared

import (
	"context"

	"webmall/internal/domain/user"
	"webmall/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type CommandReads interface {
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
}

type Tx interface {
	Users() UserRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Coupons() CouponRepository
	Inventory() InventoryRepository
	Orders() OrderRepository
	Messages() MessageRepository
	Banners() BannerRepository
	DB() db.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
}

type ProductRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p CreateProductParams) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, p UpdateProductParams) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	SetImageURL(ctx context.Context, dbtx db.DBTX, id uuid.UUID, url string) error
	// LockForOrder loads product snapshots with row locks held until the
	// surrounding transaction ends.
	LockForOrder(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) ([]ProductSnapshot, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p CreateCategoryParams) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, p UpdateCategoryParams) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type CouponRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p CreateCouponParams) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, p UpdateCouponParams) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	FindByCode(ctx context.Context, dbtx db.DBTX, code string) (*CouponSnapshot, error)
	// ConsumeUsage is the atomic increment-and-check: it bumps times_used
	// only while below the usage limit and reports whether it did.
	ConsumeUsage(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
}

type InventoryRepository interface {
	Upsert(ctx context.Context, dbtx db.DBTX, productID uuid.UUID, quantity int32, threshold int32) error
	SetQuantity(ctx context.Context, dbtx db.DBTX, productID uuid.UUID, quantity int32) error
	// AdjustQuantity applies a delta, refusing to go below zero. Returns
	// false when the floor would be crossed (or no row exists).
	AdjustQuantity(ctx context.Context, dbtx db.DBTX, productID uuid.UUID, delta int32) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p CreateOrderParams) (uuid.UUID, error)
	StatusByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (string, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status string) error
}

type MessageRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p CreateMessageParams) (uuid.UUID, error)
	Reply(ctx context.Context, dbtx db.DBTX, id uuid.UUID, reply string) error
	MarkRead(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type BannerRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p CreateBannerParams) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, p UpdateBannerParams) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	SetImageURL(ctx context.Context, dbtx db.DBTX, id uuid.UUID, url string) error
}
