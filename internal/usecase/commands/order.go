package commands

import (
	"context"

	"github.com/google/uuid"

	"webmall/internal/domain/coupon"
	"webmall/internal/domain/order"
	"webmall/internal/infra"
	"webmall/internal/pkg/clock"
	"webmall/internal/pkg/errs"
	"webmall/internal/pkg/ids"
	"webmall/internal/usecase/shared"
)

var (
	ErrOrderNotFound      = errs.New("order not found")
	ErrEmptyOrder         = errs.New("order has no items")
	ErrProductUnavailable = errs.New("product unavailable")
	ErrInsufficientStock  = errs.New("insufficient stock")
	ErrCouponExhausted    = errs.New("Coupon usage limit reached")
	ErrIllegalTransition  = errs.New("illegal order status transition")
)

type PlaceOrderItem struct {
	ProductID uuid.UUID
	Quantity  int32
}

type PlaceOrderParams struct {
	UserID     uuid.UUID
	Items      []PlaceOrderItem
	CouponCode *string
}

type PlacedOrder struct {
	ID             uuid.UUID
	Number         string
	Subtotal       int64
	DiscountAmount int64
	Total          int64
}

type OrderCommands interface {
	// Place runs the whole checkout in one transaction: lock products,
	// decrement stock, redeem the coupon, write the order.
	Place(ctx context.Context, p PlaceOrderParams) (*PlacedOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next string) error
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, clock: clk}
}

func (c *orderCommandsImpl) Place(ctx context.Context, p PlaceOrderParams) (*PlacedOrder, error) {
	if len(p.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	quantities := make(map[uuid.UUID]int32, len(p.Items))
	productIDs := make([]uuid.UUID, 0, len(p.Items))
	for _, item := range p.Items {
		if item.Quantity <= 0 {
			return nil, ErrEmptyOrder
		}
		if _, seen := quantities[item.ProductID]; !seen {
			productIDs = append(productIDs, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	var placed *PlacedOrder
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshots, err := tx.Products().LockForOrder(ctx, tx.DB(), productIDs)
		if err != nil {
			return err
		}
		if len(snapshots) != len(productIDs) {
			return ErrProductUnavailable
		}

		var subtotal int64
		items := make([]shared.OrderItemParams, 0, len(snapshots))
		for _, snap := range snapshots {
			if snap.Status != "active" {
				return ErrProductUnavailable
			}
			qty := quantities[snap.ID]
			subtotal += snap.Price * int64(qty)
			items = append(items, shared.OrderItemParams{
				ProductID: snap.ID,
				Name:      snap.Name,
				UnitPrice: snap.Price,
				Quantity:  qty,
			})

			ok, err := tx.Inventory().AdjustQuantity(ctx, tx.DB(), snap.ID, -qty)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientStock
			}
		}

		var discount int64
		var couponCode *string
		if p.CouponCode != nil && *p.CouponCode != "" {
			discount, couponCode, err = c.redeemCoupon(ctx, tx, *p.CouponCode, subtotal)
			if err != nil {
				return err
			}
		}

		params := shared.CreateOrderParams{
			Number:         ids.NewOrderNumber(),
			UserID:         p.UserID,
			Items:          items,
			Subtotal:       subtotal,
			CouponCode:     couponCode,
			DiscountAmount: discount,
			Total:          subtotal - discount,
			Status:         order.StatusPending.String(),
		}
		id, err := tx.Orders().Create(ctx, tx.DB(), params)
		if err != nil {
			return err
		}

		placed = &PlacedOrder{
			ID:             id,
			Number:         params.Number,
			Subtotal:       subtotal,
			DiscountAmount: discount,
			Total:          params.Total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func (c *orderCommandsImpl) redeemCoupon(ctx context.Context, tx shared.Tx, code string, subtotal int64) (int64, *string, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return 0, nil, ErrCouponNotFound
	}

	snap, err := tx.Coupons().FindByCode(ctx, tx.DB(), normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, nil, ErrCouponNotFound
		}
		return 0, nil, err
	}

	dc, err := snapshotToCoupon(snap)
	if err != nil {
		return 0, nil, ErrCouponNotFound
	}
	if err := dc.ValidateForOrder(subtotal, c.clock.Now()); err != nil {
		return 0, nil, err
	}

	consumed, err := tx.Coupons().ConsumeUsage(ctx, tx.DB(), snap.ID)
	if err != nil {
		return 0, nil, err
	}
	if !consumed {
		// A concurrent checkout took the last redemption after our read.
		return 0, nil, ErrCouponExhausted
	}

	codeStr := normalized.String()
	return dc.DiscountFor(subtotal), &codeStr, nil
}

func (c *orderCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, next string) error {
	nextStatus, err := order.NewStatus(next)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Orders().StatusByID(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		currentStatus, err := order.NewStatus(current)
		if err != nil {
			return err
		}
		if !currentStatus.CanTransitionTo(nextStatus) {
			return ErrIllegalTransition
		}

		return tx.Orders().UpdateStatus(ctx, tx.DB(), id, nextStatus.String())
	})
}
