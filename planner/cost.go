package planner

import (
	"errors"
	"math"
	"time"
)

// roundTripFactor is applied once per trip to the selected transport option,
// regardless of guest count or trip length.
const roundTripFactor = 2

// Trip holds the validated trip parameters a selection is priced against.
type Trip struct {
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
}

// NewTrip validates the trip parameters. Same-day check-out is allowed; a
// check-out before check-in is not.
func NewTrip(destination string, checkIn, checkOut time.Time, guests int) (Trip, error) {
	if destination == "" {
		return Trip{}, errors.New("destination is required")
	}
	if checkOut.Before(checkIn) {
		return Trip{}, errors.New("check-out date is before check-in date")
	}
	if guests <= 0 {
		return Trip{}, errors.New("guest count must be positive")
	}
	return Trip{Destination: destination, CheckIn: checkIn, CheckOut: checkOut, Guests: guests}, nil
}

// Nights is the stay length used for accommodation pricing. Same-day
// check-out yields 0 nights, which zeroes the accommodation cost.
// TODO: confirm with product whether same-day stays should charge one night.
func (t Trip) Nights() int {
	return int(math.Ceil(t.CheckOut.Sub(t.CheckIn).Hours() / 24))
}

// CostBreakdown is the per-category pricing of a selection for a trip.
type CostBreakdown struct {
	Nights        int     `json:"nights"`
	Accommodation float64 `json:"accommodation"`
	Dining        float64 `json:"dining"`
	Transport     float64 `json:"transport"`
	Total         float64 `json:"total"`
}

// Cost prices the current selection against the trip. Unselected categories
// contribute zero. Pure: the same selection and trip always yield the same
// breakdown.
//
// Accommodation is charged per night, dining per guest, and transport twice
// (a fixed round-trip, once per trip no matter how many guests or nights).
func Cost(sel *Selection, trip Trip) CostBreakdown {
	b := CostBreakdown{Nights: trip.Nights()}
	if sel.Accommodation != nil {
		b.Accommodation = sel.Accommodation.Price * float64(b.Nights)
	}
	if sel.Dish != nil {
		b.Dining = sel.Dish.Price * float64(trip.Guests)
	}
	if sel.TransportOption != nil {
		b.Transport = sel.TransportOption.Price * roundTripFactor
	}
	b.Total = b.Accommodation + b.Dining + b.Transport
	return b
}
