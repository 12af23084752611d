package order

import "time"

// PricedStay is a stored line item joined with its room's nightly rate,
// as read back from the store when a payment is prepared.
type PricedStay struct {
	StartDate        time.Time
	EndDate          time.Time
	NightlyRateCents int64
}

func (s PricedStay) Nights() int {
	return nightsBetween(s.StartDate, s.EndDate)
}

// TotalCents computes the order total in minor currency units. Pure and
// deterministic: no I/O, no clock. An item with a non-positive night count
// contributes zero rather than failing the whole computation.
func TotalCents(items []PricedStay) int64 {
	var total int64
	for _, item := range items {
		nights := item.Nights()
		if nights <= 0 {
			continue
		}
		total += int64(nights) * item.NightlyRateCents
	}
	return total
}
