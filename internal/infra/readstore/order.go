package readstore

import (
	"context"

	"hotel-booking-api/internal/domain/order"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pricedItemsSQL = `
SELECT oi.start_date, oi.end_date, r.price_in_cents
FROM order_items oi
INNER JOIN rooms r ON r.id = oi.room_id
WHERE oi.order_id = $1
ORDER BY oi.id
`

	customerEmailSQL = `
SELECT c.email
FROM orders o
INNER JOIN customers c ON c.id = o.customer_id
WHERE o.id = $1
`
)

// OrderReadStore feeds payment reconciliation: stored line items joined
// with room pricing, and the receipt email of the ordering customer.
type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

// PricedItems returns an empty slice for an unknown order id; the caller
// decides whether that means "not found".
func (r *OrderReadStore) PricedItems(ctx context.Context, orderID uuid.UUID) ([]order.PricedStay, error) {
	rows, err := r.db.Query(ctx, pricedItemsSQL, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order line items", err)
	}
	defer rows.Close()

	var items []order.PricedStay
	for rows.Next() {
		var (
			start, end pgtype.Date
			rate       int64
		)
		if err := rows.Scan(&start, &end, &rate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line item", err)
		}
		items = append(items, order.PricedStay{
			StartDate:        pgconv.DateFromPgtype(start),
			EndDate:          pgconv.DateFromPgtype(end),
			NightlyRateCents: rate,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order line items", err)
	}

	return items, nil
}

func (r *OrderReadStore) CustomerEmail(ctx context.Context, orderID uuid.UUID) (string, error) {
	var email string
	err := r.db.QueryRow(ctx, customerEmailSQL, orderID).Scan(&email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("order has no customer", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to load customer email", err)
	}

	return email, nil
}
