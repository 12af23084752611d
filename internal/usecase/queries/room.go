package queries

import (
	"context"

	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomListUnavailable = errs.New("failed to list rooms")

type RoomView struct {
	ID           uuid.UUID
	Name         string
	Beds         int32
	PetsAllowed  bool
	PriceInCents int64
	HotelID      uuid.UUID
	HotelName    string
}

type RoomReadStore interface {
	List(ctx context.Context) ([]*RoomView, error)
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomListUnavailable)
	}
	return rooms, nil
}
