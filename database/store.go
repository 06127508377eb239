package database

import (
	"errors"
	"strings"
	"time"

	"github.com/Austinjohnson7039/saffar/planner"
)

// ErrNotFound is returned for lookups of unknown plan, booking or trip ids.
var ErrNotFound = errors.New("not found")

// ─── Models ──────────────────────────────────────────────────────────────────

// Plan is a stored planning session: the trip request, its curated catalog
// and the traveler's current selection.
type Plan struct {
	ID           string            `json:"id"`
	Destination  string            `json:"destination"`
	CheckInDate  string            `json:"check_in_date"`
	CheckOutDate string            `json:"check_out_date"`
	Guests       int               `json:"guests"`
	Budget       float64           `json:"budget"`
	Catalog      planner.Catalog   `json:"catalog"`
	Selection    planner.Selection `json:"selection"`
	AISummary    string            `json:"ai_summary"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Booking is a stored booking record plus its rendered confirmation PDF.
type Booking struct {
	ID           string                `json:"id"`
	PlanID       string                `json:"plan_id"`
	TravelerName string                `json:"traveler_name"`
	Record       planner.BookingRecord `json:"record"`
	PDFData      []byte                `json:"pdf_data,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// Trip is one entry in the traveler's history.
type Trip struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Dates       string   `json:"dates"`
	Status      string   `json:"status"`
	TotalCost   float64  `json:"total_cost"`
	Rating      int      `json:"rating,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store persists planning sessions, bookings and trip history. Memory backs
// development and tests; Postgres backs deployments.
type Store interface {
	SavePlan(p *Plan) error
	GetPlan(id string) (*Plan, error)
	UpdatePlanSelection(id string, sel planner.Selection) error

	SaveBooking(b *Booking) error
	GetBooking(id string) (*Booking, error)

	SaveTrip(t *Trip) error
	// ListTrips filters by status ("all" or "" disables the filter) and by a
	// case-insensitive destination substring.
	ListTrips(status, query string) ([]Trip, error)

	Ping() error
}

// matchTrip implements the history filter shared by both store backends.
func matchTrip(t Trip, status, query string) bool {
	if status != "" && status != "all" && t.Status != status {
		return false
	}
	if query != "" && !strings.Contains(strings.ToLower(t.Destination), strings.ToLower(query)) {
		return false
	}
	return true
}

// seedTrips is the demo history every fresh store starts with.
func seedTrips() []Trip {
	return []Trip{
		{ID: "trip-tokyo-2024", Destination: "Tokyo, Japan", Dates: "March 15-22, 2024",
			Status: "completed", TotalCost: 2800, Rating: 5,
			Highlights: []string{"Mt. Fuji view from Skytree", "Michelin star dining", "Cherry blossom season"}},
		{ID: "trip-barcelona-2024", Destination: "Barcelona, Spain", Dates: "June 10-17, 2024",
			Status: "completed", TotalCost: 1900, Rating: 4,
			Highlights: []string{"Gaudi architecture", "Mediterranean cuisine", "Beach relaxation"}},
		{ID: "trip-newyork-2024", Destination: "New York, USA", Dates: "September 5-12, 2024",
			Status: "upcoming", TotalCost: 2200,
			Highlights: []string{"Broadway shows", "World-class museums", "Diverse food scene"}},
		{ID: "trip-paris-2023", Destination: "Paris, France", Dates: "April 20-27, 2023",
			Status: "completed", TotalCost: 2400, Rating: 5,
			Highlights: []string{"Eiffel Tower at sunset", "Seine river cruise", "Montmartre artists"}},
		{ID: "trip-bali-2023", Destination: "Bali, Indonesia", Dates: "December 15-22, 2023",
			Status: "completed", TotalCost: 1600, Rating: 4,
			Highlights: []string{"Sunrise at Mount Batur", "Traditional spa treatments", "Temple ceremonies"}},
	}
}
