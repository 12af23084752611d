//go:build unit || e2e

package builder

import (
	reqdto "hotel-booking-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

// OrderRequestBuilder assembles a valid CreateOrderRequest; tests mutate
// only the fields under scrutiny.
type OrderRequestBuilder struct {
	Rooms   []reqdto.RoomOrderRequest
	Address reqdto.AddressDetailsRequest
}

func NewOrderRequestBuilder() *OrderRequestBuilder {
	return &OrderRequestBuilder{
		Rooms: []reqdto.RoomOrderRequest{
			{
				RoomID:    uuid.New(),
				StartDate: "2024-03-01",
				EndDate:   "2024-03-03",
			},
		},
		Address: reqdto.AddressDetailsRequest{
			Email:           "guest@example.com",
			BillingStreet:   "1 Main St",
			BillingCity:     "Berlin",
			BillingPostcode: "10115",
			BillingCountry:  "DE",
		},
	}
}

func (b *OrderRequestBuilder) With(mutate func(*OrderRequestBuilder)) *OrderRequestBuilder {
	mutate(b)
	return b
}

func (b *OrderRequestBuilder) WithRoom(roomID uuid.UUID, startDate, endDate string) *OrderRequestBuilder {
	b.Rooms = []reqdto.RoomOrderRequest{
		{RoomID: roomID, StartDate: startDate, EndDate: endDate},
	}
	return b
}

func (b *OrderRequestBuilder) AddRoom(roomID uuid.UUID, startDate, endDate string) *OrderRequestBuilder {
	b.Rooms = append(b.Rooms, reqdto.RoomOrderRequest{
		RoomID: roomID, StartDate: startDate, EndDate: endDate,
	})
	return b
}

func (b *OrderRequestBuilder) Build() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		RoomsOrder:     b.Rooms,
		AddressDetails: b.Address,
	}
}
