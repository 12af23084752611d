package shared

import (
	"context"

	"hotel-booking-api/internal/domain/order"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes a write transaction: begin on entry, commit when fn
// returns nil, rollback on every other exit path including panics.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Customers() CustomerRepository
	Orders() OrderRepository
	DB() db.DBTX
}

type CustomerRepository interface {
	Create(ctx context.Context, tx db.DBTX, addr order.Address) (uuid.UUID, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, customerID uuid.UUID) (uuid.UUID, error)
	AddLineItem(ctx context.Context, tx db.DBTX, orderID uuid.UUID, item order.LineItem) error
}
