//go:build unit

package order_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStayPeriodNights(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "two nights", start: "2024-03-01", end: "2024-03-03", want: 2},
		{name: "one night", start: "2024-03-01", end: "2024-03-02", want: 1},
		{name: "same day", start: "2024-03-01", end: "2024-03-01", want: 0},
		{name: "inverted", start: "2024-03-03", end: "2024-03-01", want: -2},
		{name: "across month boundary", start: "2024-01-30", end: "2024-02-02", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := order.NewStayPeriod(date(tt.start), date(tt.end))
			assert.Equal(t, tt.want, p.Nights())
		})
	}
}

func TestStayPeriodTruncatesToDay(t *testing.T) {
	late := time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)
	early := time.Date(2024, 3, 2, 0, 0, 1, 0, time.UTC)

	p := order.NewStayPeriod(late, early)

	assert.Equal(t, 1, p.Nights())
	assert.Equal(t, date("2024-03-01"), p.Start())
	assert.Equal(t, date("2024-03-02"), p.End())
}

func TestNewAddress(t *testing.T) {
	addr, err := order.NewAddress("guest@example.com", "1 Main St", "Apt 4", "Berlin", "10115", "DE")
	require.NoError(t, err)

	assert.Equal(t, "guest@example.com", addr.Email())
	assert.Equal(t, "Apt 4", addr.StreetAdd())

	same, err := order.NewAddress("guest@example.com", "1 Main St", "Apt 4", "Berlin", "10115", "DE")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(addr, same, cmp.AllowUnexported(order.Address{})))
}

func TestNewAddressRejectsBadEmail(t *testing.T) {
	_, err := order.NewAddress("not-an-email", "1 Main St", "", "Berlin", "10115", "DE")
	require.ErrorIs(t, err, order.ErrInvalidEmail)
}

func TestNewDraftRejectsEmptyItems(t *testing.T) {
	addr, err := order.NewAddress("guest@example.com", "1 Main St", "", "Berlin", "10115", "DE")
	require.NoError(t, err)

	_, err = order.NewDraft(nil, addr)
	require.ErrorIs(t, err, order.ErrEmptyOrder)
}

func TestNewDraftKeepsItems(t *testing.T) {
	addr, err := order.NewAddress("guest@example.com", "1 Main St", "", "Berlin", "10115", "DE")
	require.NoError(t, err)

	roomID := uuid.New()
	item := order.NewLineItem(roomID, order.NewStayPeriod(date("2024-03-01"), date("2024-03-03")))

	draft, err := order.NewDraft([]order.LineItem{item}, addr)
	require.NoError(t, err)

	require.Len(t, draft.Items(), 1)
	assert.Equal(t, roomID, draft.Items()[0].RoomID())
	assert.Equal(t, addr, draft.Address())
}
