package planner

// ─── Catalog Types ────────────────────────────────────────────────────────────

// Accommodation is a bookable stay option. Price is per night.
type Accommodation struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Price      float64  `json:"price"`
	Rating     float64  `json:"rating"`
	Amenities  []string `json:"amenities,omitempty"`
	MatchScore int      `json:"match_score,omitempty"`
}

// Restaurant pairs a venue with its signature dish. Price is per person,
// not per table.
type Restaurant struct {
	Name   string  `json:"name"`
	Dish   string  `json:"dish"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
	Reason string  `json:"reason,omitempty"`
}

// Cuisine groups the recommended restaurants of one cuisine type.
type Cuisine struct {
	Type        string       `json:"type"`
	Popularity  int          `json:"popularity,omitempty"`
	Restaurants []Restaurant `json:"restaurants"`
}

// TransportOption price is for a single trip; totals apply the round-trip
// multiplier on top.
type TransportOption struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Time     string   `json:"time,omitempty"`
	Capacity string   `json:"capacity,omitempty"`
	Features []string `json:"features,omitempty"`
}

// TransportMode groups the options of one transport type (cab, metro, ...).
type TransportMode struct {
	Type       string            `json:"type"`
	Efficiency int               `json:"efficiency,omitempty"`
	Options    []TransportOption `json:"options"`
}

// Catalog is the full recommendation set for a destination. The planner
// treats it as read-only input; rating, amenity and score metadata passes
// through untouched.
type Catalog struct {
	Accommodations []Accommodation `json:"accommodations"`
	Cuisines       []Cuisine       `json:"cuisines"`
	Transport      []TransportMode `json:"transport"`
}

// ─── Lookups ──────────────────────────────────────────────────────────────────

// FindAccommodation returns the accommodation with the given id.
func (c Catalog) FindAccommodation(id int) (Accommodation, bool) {
	for _, a := range c.Accommodations {
		if a.ID == id {
			return a, true
		}
	}
	return Accommodation{}, false
}

// FindDish returns the restaurant serving the named dish within a cuisine type.
func (c Catalog) FindDish(cuisineType, dish string) (Restaurant, bool) {
	for _, cu := range c.Cuisines {
		if cu.Type != cuisineType {
			continue
		}
		for _, r := range cu.Restaurants {
			if r.Dish == dish {
				return r, true
			}
		}
	}
	return Restaurant{}, false
}

// FindTransportOption returns the named option within a transport type.
func (c Catalog) FindTransportOption(transportType, name string) (TransportOption, bool) {
	for _, m := range c.Transport {
		if m.Type != transportType {
			continue
		}
		for _, o := range m.Options {
			if o.Name == name {
				return o, true
			}
		}
	}
	return TransportOption{}, false
}
