package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/queries"
)

const listRoomsSQL = `
SELECT r.id, r.name, r.beds, r.pets_allowed, r.price_in_cents, h.id, h.name
FROM rooms r
INNER JOIN hotels h ON h.id = r.hotel_id
ORDER BY h.name, r.name
`

// RoomReadStore serves the catalog read path: immutable reference data,
// plain join, no invariants beyond the foreign key.
type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, listRoomsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(&v.ID, &v.Name, &v.Beds, &v.PetsAllowed, &v.PriceInCents, &v.HotelID, &v.HotelName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}

	return result, nil
}
