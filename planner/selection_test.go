package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAccommodationReplaces(t *testing.T) {
	var sel Selection

	sel.SelectAccommodation(Accommodation{ID: 1, Name: "The Oberoi", Price: 15000})
	sel.SelectAccommodation(Accommodation{ID: 3, Name: "Hotel Comfort Inn", Price: 8000})

	assert.Equal(t, 3, sel.Accommodation.ID)
	assert.Equal(t, "Hotel Comfort Inn", sel.Accommodation.Name)
}

func TestSelectDishUpdatesCuisineAtomically(t *testing.T) {
	var sel Selection

	sel.SelectDish("North Indian", Restaurant{Name: "Bukhara", Dish: "Dal Bukhara", Price: 1800})
	sel.SelectDish("South Indian", Restaurant{Name: "Saravana Bhavan", Dish: "Masala Dosa", Price: 250})

	assert.Equal(t, "South Indian", sel.CuisineType)
	assert.Equal(t, "Masala Dosa", sel.Dish.Dish)
}

func TestSelectTransportReplacesPair(t *testing.T) {
	var sel Selection

	sel.SelectTransport("Smart Cab", TransportOption{Name: "Ola Prime", Price: 300})
	sel.SelectTransport("Public Transport", TransportOption{Name: "Metro Day Pass", Price: 200})

	assert.Equal(t, "Public Transport", sel.TransportType)
	assert.Equal(t, "Metro Day Pass", sel.TransportOption.Name)
}

func TestDishImpliesCuisineType(t *testing.T) {
	var sel Selection

	sel.SelectDish("North Indian", Restaurant{Name: "Karim's", Dish: "Mutton Korma", Price: 1200})

	if sel.Dish != nil && sel.CuisineType == "" {
		t.Fatal("dish selected without a cuisine type")
	}
}

func TestReadyRequiresAllThreeConcretePicks(t *testing.T) {
	acc := Accommodation{ID: 1, Name: "ITC Grand Central", Price: 12000}
	dish := Restaurant{Name: "Dakshin", Dish: "Hyderabadi Biryani", Price: 800}
	opt := TransportOption{Name: "Uber Black", Price: 500}

	cases := []struct {
		name  string
		build func() *Selection
		want  bool
	}{
		{"empty", func() *Selection { return &Selection{} }, false},
		{"accommodation only", func() *Selection {
			s := &Selection{}
			s.SelectAccommodation(acc)
			return s
		}, false},
		{"dish only", func() *Selection {
			s := &Selection{}
			s.SelectDish("South Indian", dish)
			return s
		}, false},
		{"transport only", func() *Selection {
			s := &Selection{}
			s.SelectTransport("Smart Cab", opt)
			return s
		}, false},
		{"type without option", func() *Selection {
			s := &Selection{}
			s.SelectAccommodation(acc)
			s.SelectDish("South Indian", dish)
			s.TransportType = "Smart Cab"
			return s
		}, false},
		{"all three", func() *Selection {
			s := &Selection{}
			s.SelectAccommodation(acc)
			s.SelectDish("South Indian", dish)
			s.SelectTransport("Smart Cab", opt)
			return s
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.build().Ready())
		})
	}
}

func TestCatalogLookups(t *testing.T) {
	cat := Catalog{
		Accommodations: []Accommodation{{ID: 1, Name: "The Oberoi"}, {ID: 2, Name: "ITC Grand Central"}},
		Cuisines: []Cuisine{{
			Type:        "North Indian",
			Restaurants: []Restaurant{{Name: "Bukhara", Dish: "Dal Bukhara"}},
		}},
		Transport: []TransportMode{{
			Type:    "Smart Cab",
			Options: []TransportOption{{Name: "Ola Prime", Price: 300}},
		}},
	}

	a, ok := cat.FindAccommodation(2)
	assert.True(t, ok)
	assert.Equal(t, "ITC Grand Central", a.Name)

	_, ok = cat.FindAccommodation(99)
	assert.False(t, ok)

	r, ok := cat.FindDish("North Indian", "Dal Bukhara")
	assert.True(t, ok)
	assert.Equal(t, "Bukhara", r.Name)

	_, ok = cat.FindDish("South Indian", "Dal Bukhara")
	assert.False(t, ok, "dish must be looked up within its own cuisine type")

	o, ok := cat.FindTransportOption("Smart Cab", "Ola Prime")
	assert.True(t, ok)
	assert.Equal(t, 300.0, o.Price)

	_, ok = cat.FindTransportOption("Public Transport", "Ola Prime")
	assert.False(t, ok)
}
