package order

import (
	"errors"

	"github.com/google/uuid"
)

var ErrEmptyOrder = errors.New("order has no line items")

// LineItem is one room booked for one stay period within an order.
type LineItem struct {
	roomID uuid.UUID
	stay   StayPeriod
}

func NewLineItem(roomID uuid.UUID, stay StayPeriod) LineItem {
	return LineItem{roomID: roomID, stay: stay}
}

func (li LineItem) RoomID() uuid.UUID { return li.roomID }
func (li LineItem) Stay() StayPeriod  { return li.stay }

// Draft is a client-submitted order before persistence assigns it an id.
// Room ids are taken as given; referential integrity is enforced by the
// store when the draft is written.
type Draft struct {
	items   []LineItem
	address Address
}

func NewDraft(items []LineItem, address Address) (*Draft, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	return &Draft{items: items, address: address}, nil
}

func (d *Draft) Items() []LineItem { return d.items }
func (d *Draft) Address() Address  { return d.address }
