package planner

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrIncompleteSelection is returned when a booking is assembled before all
// three categories have a pick. The caller should surface it, not retry.
var ErrIncompleteSelection = errors.New("selection incomplete: accommodation, dish and transport option are all required")

const dateLayout = "2006-01-02"

// CuisineChoice is the booked cuisine type with its chosen dish.
type CuisineChoice struct {
	Type string     `json:"type"`
	Dish Restaurant `json:"dish"`
}

// TransportChoice is the booked transport type with its chosen option.
type TransportChoice struct {
	Type   string          `json:"type"`
	Option TransportOption `json:"option"`
}

// BookedSelection is a by-value snapshot of a complete selection. Later
// changes to the live selection do not reach it.
type BookedSelection struct {
	Accommodation Accommodation   `json:"accommodation"`
	Cuisine       CuisineChoice   `json:"cuisine"`
	Transport     TransportChoice `json:"transport"`
}

// TripDetails is the trip metadata carried on a booking record.
type TripDetails struct {
	Destination  string `json:"destination"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Guests       int    `json:"guests"`
}

// BookingRecord is the immutable output of a completed selection, handed
// downstream to the payment collaborator. It is never mutated after creation.
type BookingRecord struct {
	BookingID string          `json:"booking_id"`
	Selection BookedSelection `json:"selection"`
	Trip      TripDetails     `json:"trip_details"`
	Cost      CostBreakdown   `json:"cost_breakdown"`
	TotalCost float64         `json:"total_cost"`
	CreatedAt time.Time       `json:"created_at"`
}

// AssembleBooking snapshots the selection and trip into a booking record with
// a fresh UUID. UUIDs make booking ids unique by construction rather than by
// timestamp luck. It refuses to produce a record while the selection is
// incomplete.
func AssembleBooking(sel *Selection, trip Trip) (*BookingRecord, error) {
	if !sel.Ready() {
		return nil, ErrIncompleteSelection
	}

	cost := Cost(sel, trip)

	return &BookingRecord{
		BookingID: uuid.New().String(),
		Selection: BookedSelection{
			Accommodation: *sel.Accommodation,
			Cuisine:       CuisineChoice{Type: sel.CuisineType, Dish: *sel.Dish},
			Transport:     TransportChoice{Type: sel.TransportType, Option: *sel.TransportOption},
		},
		Trip: TripDetails{
			Destination:  trip.Destination,
			CheckInDate:  trip.CheckIn.Format(dateLayout),
			CheckOutDate: trip.CheckOut.Format(dateLayout),
			Guests:       trip.Guests,
		},
		Cost:      cost,
		TotalCost: cost.Total,
		CreatedAt: time.Now().UTC(),
	}, nil
}
