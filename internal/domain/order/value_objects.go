package order

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidEmail = errors.New("invalid email address")

// StayPeriod is a half-open calendar range [start, end): a one-night stay
// ends the day after it starts. No validation happens here; a period whose
// end is not after its start simply prices as zero nights.
type StayPeriod struct {
	start time.Time
	end   time.Time
}

func NewStayPeriod(start, end time.Time) StayPeriod {
	return StayPeriod{
		start: truncateToDay(start),
		end:   truncateToDay(end),
	}
}

func (p StayPeriod) Start() time.Time {
	return p.start
}

func (p StayPeriod) End() time.Time {
	return p.end
}

// Nights may be zero or negative for malformed periods; callers clamp.
func (p StayPeriod) Nights() int {
	return nightsBetween(p.start, p.end)
}

func nightsBetween(start, end time.Time) int {
	return int(truncateToDay(end).Sub(truncateToDay(start)) / (24 * time.Hour))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Address carries the billing details submitted with an order. The street
// addendum is optional and defaults to the empty string; the remaining
// fields are shape-checked at the HTTP boundary, not here.
type Address struct {
	email     string
	street    string
	streetAdd string
	city      string
	postcode  string
	country   string
}

func NewAddress(email, street, streetAdd, city, postcode, country string) (Address, error) {
	if !strings.Contains(email, "@") {
		return Address{}, ErrInvalidEmail
	}
	return Address{
		email:     email,
		street:    street,
		streetAdd: streetAdd,
		city:      city,
		postcode:  postcode,
		country:   country,
	}, nil
}

func (a Address) Email() string     { return a.email }
func (a Address) Street() string    { return a.street }
func (a Address) StreetAdd() string { return a.streetAdd }
func (a Address) City() string      { return a.city }
func (a Address) Postcode() string  { return a.postcode }
func (a Address) Country() string   { return a.country }
