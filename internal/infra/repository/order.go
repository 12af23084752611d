package repository

import (
	"context"

	"hotel-booking-api/internal/domain/order"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	createOrderSQL = `
INSERT INTO orders (id, customer_id)
VALUES ($1, $2)
RETURNING id
`

	addLineItemSQL = `
INSERT INTO order_items (id, order_id, room_id, start_date, end_date)
VALUES ($1, $2, $3, $4, $5)
`
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, customerID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createOrderSQL, uuid.New(), customerID).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	return id, nil
}

// AddLineItem relies on the room_id foreign key: an unknown room surfaces as
// KindForeignKeyViolated and aborts the enclosing transaction.
func (r *OrderRepository) AddLineItem(ctx context.Context, tx db.DBTX, orderID uuid.UUID, item order.LineItem) error {
	_, err := tx.Exec(ctx, addLineItemSQL,
		uuid.New(),
		orderID,
		item.RoomID(),
		pgconv.DateToPgtype(item.Stay().Start()),
		pgconv.DateToPgtype(item.Stay().End()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to add order line item", err)
	}

	return nil
}
