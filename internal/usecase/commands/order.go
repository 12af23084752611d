package commands

import (
	"context"

	"hotel-booking-api/internal/domain/order"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder       = errs.New("order has no line items")
	ErrUnknownRoom      = errs.New("order references an unknown room")
	ErrOrderPersistence = errs.New("failed to persist order")
)

type OrderCommands interface {
	PlaceOrder(ctx context.Context, draft *order.Draft) (uuid.UUID, error)
}

func NewOrderCommands(uow shared.UnitOfWork) OrderCommands {
	return &orderCommandsImpl{uow: uow}
}

type orderCommandsImpl struct {
	uow shared.UnitOfWork
}

// PlaceOrder writes customer, order and line items in one transaction, in
// that fixed row order. Any insert failure rolls back the whole attempt;
// no partial order is ever visible to other readers.
func (c *orderCommandsImpl) PlaceOrder(ctx context.Context, draft *order.Draft) (uuid.UUID, error) {
	if draft == nil || len(draft.Items()) == 0 {
		return uuid.Nil, ErrEmptyOrder
	}

	var orderID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		customerID, err := tx.Customers().Create(ctx, tx.DB(), draft.Address())
		if err != nil {
			return err
		}

		orderID, err = tx.Orders().Create(ctx, tx.DB(), customerID)
		if err != nil {
			return err
		}

		for _, item := range draft.Items() {
			if err := tx.Orders().AddLineItem(ctx, tx.DB(), orderID, item); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, ErrUnknownRoom)
		}
		return uuid.Nil, errs.Mark(err, ErrOrderPersistence)
	}

	return orderID, nil
}
