package planner

// Selection tracks the traveler's current pick in each of the three booking
// categories. Picking again within a category replaces the previous choice;
// a selection never holds two items of the same category and nothing is ever
// removed, only replaced.
type Selection struct {
	Accommodation   *Accommodation   `json:"accommodation,omitempty"`
	CuisineType     string           `json:"cuisine_type,omitempty"`
	Dish            *Restaurant      `json:"dish,omitempty"`
	TransportType   string           `json:"transport_type,omitempty"`
	TransportOption *TransportOption `json:"transport_option,omitempty"`
}

// SelectAccommodation replaces the current accommodation choice.
func (s *Selection) SelectAccommodation(a Accommodation) {
	s.Accommodation = &a
}

// SelectDish replaces the cuisine type and dish together, so a dish never
// outlives the cuisine it belongs to.
func (s *Selection) SelectDish(cuisineType string, dish Restaurant) {
	s.CuisineType = cuisineType
	s.Dish = &dish
}

// SelectTransport replaces the transport type and option together.
func (s *Selection) SelectTransport(transportType string, option TransportOption) {
	s.TransportType = transportType
	s.TransportOption = &option
}

// Ready reports whether every category has a concrete pick. A cuisine or
// transport type on its own, without a dish or option, does not count.
func (s *Selection) Ready() bool {
	return s.Accommodation != nil && s.Dish != nil && s.TransportOption != nil
}
