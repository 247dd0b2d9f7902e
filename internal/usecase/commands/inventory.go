package commands

import (
	"context"

	"github.com/google/uuid"

	"webmall/internal/infra"
	"webmall/internal/pkg/errs"
	"webmall/internal/usecase/shared"
)

var (
	ErrInventoryNotFound = errs.New("inventory item not found")
	ErrNegativeStock     = errs.New("stock cannot go below zero")
	ErrInvalidAdjustment = errs.New("either quantity or delta is required")
)

// AdjustInventoryParams sets the quantity outright or shifts it by a delta,
// never both.
type AdjustInventoryParams struct {
	Quantity *int32
	Delta    *int32
}

type InventoryCommands interface {
	Upsert(ctx context.Context, productID uuid.UUID, quantity, threshold int32) error
	Adjust(ctx context.Context, productID uuid.UUID, p AdjustInventoryParams) error
}

type inventoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryCommands(uow shared.UnitOfWork) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow}
}

func (c *inventoryCommandsImpl) Upsert(ctx context.Context, productID uuid.UUID, quantity, threshold int32) error {
	if quantity < 0 {
		return ErrNegativeStock
	}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Inventory().Upsert(ctx, tx.DB(), productID, quantity, threshold)
	})
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return ErrProductNotFound
	}
	return err
}

func (c *inventoryCommandsImpl) Adjust(ctx context.Context, productID uuid.UUID, p AdjustInventoryParams) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		switch {
		case p.Quantity != nil:
			if *p.Quantity < 0 {
				return ErrNegativeStock
			}
			err := tx.Inventory().SetQuantity(ctx, tx.DB(), productID, *p.Quantity)
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInventoryNotFound
			}
			return err
		case p.Delta != nil:
			ok, err := tx.Inventory().AdjustQuantity(ctx, tx.DB(), productID, *p.Delta)
			if err != nil {
				return err
			}
			if !ok {
				return ErrNegativeStock
			}
			return nil
		default:
			return ErrInvalidAdjustment
		}
	})
}
