package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleBookingRejectsEveryIncompleteCombination(t *testing.T) {
	trip, err := NewTrip("Delhi", day("2025-03-10"), day("2025-03-13"), 2)
	require.NoError(t, err)

	acc := Accommodation{ID: 1, Name: "The Oberoi", Price: 250}
	dish := Restaurant{Name: "Bukhara", Dish: "Dal Bukhara", Price: 30}
	opt := TransportOption{Name: "Ola Prime", Price: 20}

	// All 7 incomplete combinations of the three categories.
	for mask := 0; mask < 7; mask++ {
		sel := &Selection{}
		if mask&1 != 0 {
			sel.SelectAccommodation(acc)
		}
		if mask&2 != 0 {
			sel.SelectDish("North Indian", dish)
		}
		if mask&4 != 0 {
			sel.SelectTransport("Smart Cab", opt)
		}

		_, err := AssembleBooking(sel, trip)
		assert.ErrorIs(t, err, ErrIncompleteSelection, "mask %03b should be refused", mask)
	}
}

func TestAssembleBookingSnapshot(t *testing.T) {
	trip, err := NewTrip("Delhi", day("2025-03-10"), day("2025-03-13"), 2)
	require.NoError(t, err)
	sel := completeSelection()

	rec, err := AssembleBooking(sel, trip)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.BookingID)
	assert.Equal(t, "Delhi", rec.Trip.Destination)
	assert.Equal(t, "2025-03-10", rec.Trip.CheckInDate)
	assert.Equal(t, "2025-03-13", rec.Trip.CheckOutDate)
	assert.Equal(t, 2, rec.Trip.Guests)
	assert.Equal(t, "The Oberoi", rec.Selection.Accommodation.Name)
	assert.Equal(t, "North Indian", rec.Selection.Cuisine.Type)
	assert.Equal(t, "Dal Bukhara", rec.Selection.Cuisine.Dish.Dish)
	assert.Equal(t, "Smart Cab", rec.Selection.Transport.Type)
	assert.Equal(t, 850.0, rec.TotalCost)
	assert.Equal(t, rec.Cost.Total, rec.TotalCost)
}

func TestBookingRecordIsDetachedFromLiveSelection(t *testing.T) {
	trip, err := NewTrip("Delhi", day("2025-03-10"), day("2025-03-13"), 2)
	require.NoError(t, err)
	sel := completeSelection()

	rec, err := AssembleBooking(sel, trip)
	require.NoError(t, err)

	// Replacing a choice after assembly must not reach the record.
	sel.SelectAccommodation(Accommodation{ID: 9, Name: "Generator Hostel", Price: 40})

	assert.Equal(t, "The Oberoi", rec.Selection.Accommodation.Name)
	assert.Equal(t, 250.0, rec.Selection.Accommodation.Price)
}

func TestBookingIDsAreUnique(t *testing.T) {
	trip, err := NewTrip("Delhi", day("2025-03-10"), day("2025-03-13"), 2)
	require.NoError(t, err)
	sel := completeSelection()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rec, err := AssembleBooking(sel, trip)
		require.NoError(t, err)
		assert.False(t, seen[rec.BookingID], "duplicate booking id %s", rec.BookingID)
		seen[rec.BookingID] = true
	}
}
