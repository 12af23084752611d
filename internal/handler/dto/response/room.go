package response

import (
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
}

type RoomResponse struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Beds         int32         `json:"beds"`
	PetsAllowed  bool          `json:"pets_allowed"`
	PriceInCents int64         `json:"price_in_cents"`
	Hotel        HotelResponse `json:"hotel"`
}

type HotelResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromRoomViews(views []*queries.RoomView) *RoomListResponse {
	rooms := make([]*RoomResponse, len(views))
	for i, v := range views {
		rooms[i] = &RoomResponse{
			ID:           v.ID,
			Name:         v.Name,
			Beds:         v.Beds,
			PetsAllowed:  v.PetsAllowed,
			PriceInCents: v.PriceInCents,
			Hotel: HotelResponse{
				ID:   v.HotelID,
				Name: v.HotelName,
			},
		}
	}
	return &RoomListResponse{Rooms: rooms}
}
