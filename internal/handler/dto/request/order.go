package request

import (
	"time"

	"hotel-booking-api/internal/domain/order"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	RoomsOrder     []RoomOrderRequest    `json:"rooms_order" binding:"required,min=1,dive"`
	AddressDetails AddressDetailsRequest `json:"address_details" binding:"required"`
}

type RoomOrderRequest struct {
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string    `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type AddressDetailsRequest struct {
	Email            string  `json:"email" binding:"required,email"`
	BillingStreet    string  `json:"billing_street" binding:"required"`
	BillingStreetAdd *string `json:"billing_street_add"`
	BillingCity      string  `json:"billing_city" binding:"required"`
	BillingPostcode  string  `json:"billing_postcode" binding:"required"`
	BillingCountry   string  `json:"billing_country" binding:"required"`
}

func (r *CreateOrderRequest) ToDomain() (*order.Draft, error) {
	items := make([]order.LineItem, 0, len(r.RoomsOrder))
	for _, ro := range r.RoomsOrder {
		start, err := time.Parse(time.DateOnly, ro.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := time.Parse(time.DateOnly, ro.EndDate)
		if err != nil {
			return nil, err
		}
		items = append(items, order.NewLineItem(ro.RoomID, order.NewStayPeriod(start, end)))
	}

	streetAdd := ""
	if r.AddressDetails.BillingStreetAdd != nil {
		streetAdd = *r.AddressDetails.BillingStreetAdd
	}

	addr, err := order.NewAddress(
		r.AddressDetails.Email,
		r.AddressDetails.BillingStreet,
		streetAdd,
		r.AddressDetails.BillingCity,
		r.AddressDetails.BillingPostcode,
		r.AddressDetails.BillingCountry,
	)
	if err != nil {
		return nil, err
	}

	return order.NewDraft(items, addr)
}
