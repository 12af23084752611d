package repository

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertPaymentSQL = `
INSERT INTO order_payments (order_id, payment_intent_id)
VALUES ($1, $2)
`

	findPaymentSQL = `
SELECT payment_intent_id
FROM order_payments
WHERE order_id = $1
`
)

// PaymentRepository owns the order -> payment intent mapping. The primary
// key on order_id is the only concurrency control for reconciliation: a
// losing insert comes back as KindDuplicateKey and the caller re-reads.
type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

// InsertIntentID never overwrites an existing mapping.
func (r *PaymentRepository) InsertIntentID(ctx context.Context, orderID uuid.UUID, intentID string) error {
	_, err := r.db.Exec(ctx, insertPaymentSQL, orderID, intentID)
	if err != nil {
		return infra.WrapRepoErr("failed to record payment intent", err)
	}

	return nil
}

func (r *PaymentRepository) FindIntentID(ctx context.Context, orderID uuid.UUID) (string, error) {
	var intentID string
	err := r.db.QueryRow(ctx, findPaymentSQL, orderID).Scan(&intentID)
	if err != nil {
		return "", infra.WrapRepoErr("failed to find payment intent for order", err)
	}

	return intentID, nil
}
