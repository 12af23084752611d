package repository

import (
	"context"

	"hotel-booking-api/internal/domain/order"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

const createCustomerSQL = `
INSERT INTO customers (id, email, billing_street, billing_street_add, billing_city, billing_postcode, billing_country)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

// CustomerRepository writes one customer row per order submission. There is
// deliberately no lookup by email: repeat customers get fresh rows.
type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(ctx context.Context, tx db.DBTX, addr order.Address) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createCustomerSQL,
		uuid.New(),
		addr.Email(),
		addr.Street(),
		addr.StreetAdd(),
		addr.City(),
		addr.Postcode(),
		addr.Country(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}

	return id, nil
}
