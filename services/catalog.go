package services

import (
	"strings"

	"github.com/Austinjohnson7039/saffar/planner"
)

// ─── Curated Catalogs ─────────────────────────────────────────────────────────

// BuildCatalog returns the recommendation set for a destination: curated data
// for cities we know, a generic set otherwise. This stands in for a live
// inventory provider; everything here is priced estimates, not offers.
func BuildCatalog(destination string) planner.Catalog {
	key := strings.ToLower(strings.TrimSpace(destination))
	if cat, ok := cityCatalogs[key]; ok {
		return cat
	}
	return genericCatalog(destination)
}

var cityCatalogs = map[string]planner.Catalog{
	"delhi": {
		Accommodations: []planner.Accommodation{
			{ID: 1, Name: "The Oberoi", Type: "Luxury", Price: 15000, Rating: 4.8,
				Amenities: []string{"Pool", "Spa", "Restaurant"}, MatchScore: 96},
			{ID: 2, Name: "ITC Grand Central", Type: "Premium", Price: 12000, Rating: 4.6,
				Amenities: []string{"Rooftop Bar", "Gym", "WiFi"}, MatchScore: 89},
			{ID: 3, Name: "Hotel Comfort Inn", Type: "Business", Price: 8000, Rating: 4.4,
				Amenities: []string{"Breakfast", "Parking", "WiFi"}, MatchScore: 82},
		},
		Cuisines: []planner.Cuisine{
			{Type: "North Indian", Popularity: 94, Restaurants: []planner.Restaurant{
				{Name: "Bukhara", Dish: "Dal Bukhara", Price: 1800, Rating: 4.7,
					Reason: "Michelin recommended, matches your spice tolerance"},
				{Name: "Karim's", Dish: "Mutton Korma", Price: 1200, Rating: 4.8,
					Reason: "Historic recipe, 200+ years old"},
				{Name: "Paranthe Wali Gali", Dish: "Aloo Paratha", Price: 300, Rating: 4.6,
					Reason: "Authentic street food, safe for tourists"},
			}},
			{Type: "South Indian", Popularity: 87, Restaurants: []planner.Restaurant{
				{Name: "Saravana Bhavan", Dish: "Masala Dosa", Price: 250, Rating: 4.9,
					Reason: "Global chain, consistent quality"},
				{Name: "Murugan Idli", Dish: "Idli Sambar", Price: 180, Rating: 4.5,
					Reason: "Local favorite, quick service"},
				{Name: "Dakshin", Dish: "Hyderabadi Biryani", Price: 800, Rating: 4.8,
					Reason: "Award-winning chef, generous portions"},
			}},
		},
		Transport: []planner.TransportMode{
			{Type: "Smart Cab", Efficiency: 92, Options: []planner.TransportOption{
				{Name: "Ola Prime", Price: 300, Time: "5 min", Capacity: "4",
					Features: []string{"Real-time tracking", "AC guaranteed"}},
				{Name: "Uber Black", Price: 500, Time: "3 min", Capacity: "4",
					Features: []string{"Premium vehicles", "Professional drivers"}},
				{Name: "Ola Share", Price: 150, Time: "7 min", Capacity: "6",
					Features: []string{"Eco-friendly", "Cost optimized"}},
			}},
			{Type: "Public Transport", Efficiency: 78, Options: []planner.TransportOption{
				{Name: "Metro Day Pass", Price: 200, Time: "15 min", Capacity: "Unlimited",
					Features: []string{"Crowd predictions", "Station navigation"}},
				{Name: "Bus Day Pass", Price: 100, Time: "20 min", Capacity: "Unlimited",
					Features: []string{"Route optimization", "Live tracking"}},
			}},
		},
	},

	"goa": {
		Accommodations: []planner.Accommodation{
			{ID: 1, Name: "Taj Exotica", Type: "Luxury", Price: 18000, Rating: 4.8,
				Amenities: []string{"Private Beach", "Pool", "Spa"}, MatchScore: 95},
			{ID: 2, Name: "W Goa", Type: "Premium", Price: 14000, Rating: 4.6,
				Amenities: []string{"Beach Club", "Bar", "Gym"}, MatchScore: 90},
			{ID: 3, Name: "Zostel Goa", Type: "Budget", Price: 1500, Rating: 4.2,
				Amenities: []string{"Common Room", "Cafe", "WiFi"}, MatchScore: 78},
		},
		Cuisines: []planner.Cuisine{
			{Type: "Goan", Popularity: 96, Restaurants: []planner.Restaurant{
				{Name: "Martin's Corner", Dish: "Fish Curry Rice", Price: 600, Rating: 4.7,
					Reason: "Legendary beachside institution"},
				{Name: "Vinayak Family Restaurant", Dish: "Prawn Balchao", Price: 450, Rating: 4.6,
					Reason: "Local favorite away from tourist strips"},
				{Name: "Gunpowder", Dish: "Pork Vindaloo", Price: 700, Rating: 4.5,
					Reason: "Traditional recipe, heritage setting"},
			}},
			{Type: "Seafood Grill", Popularity: 88, Restaurants: []planner.Restaurant{
				{Name: "Fisherman's Wharf", Dish: "Grilled Kingfish", Price: 900, Rating: 4.6,
					Reason: "Riverside dining, live music"},
				{Name: "Britto's", Dish: "Tandoori Lobster", Price: 1600, Rating: 4.4,
					Reason: "Baga beach classic"},
			}},
		},
		Transport: []planner.TransportMode{
			{Type: "Rentals", Efficiency: 90, Options: []planner.TransportOption{
				{Name: "Scooter Rental", Price: 400, Time: "on demand", Capacity: "2",
					Features: []string{"Helmets included", "Free delivery"}},
				{Name: "Car Rental", Price: 1500, Time: "on demand", Capacity: "4",
					Features: []string{"Self drive", "Unlimited km"}},
			}},
			{Type: "Taxi", Efficiency: 75, Options: []planner.TransportOption{
				{Name: "GoaMiles", Price: 350, Time: "10 min", Capacity: "4",
					Features: []string{"Fixed fares", "App booking"}},
			}},
		},
	},

	"jaipur": {
		Accommodations: []planner.Accommodation{
			{ID: 1, Name: "Rambagh Palace", Type: "Heritage", Price: 25000, Rating: 4.9,
				Amenities: []string{"Palace Gardens", "Spa", "Fine Dining"}, MatchScore: 97},
			{ID: 2, Name: "Samode Haveli", Type: "Boutique", Price: 11000, Rating: 4.6,
				Amenities: []string{"Courtyard Pool", "Rooftop", "WiFi"}, MatchScore: 88},
			{ID: 3, Name: "Hotel Pearl Palace", Type: "Budget", Price: 2500, Rating: 4.5,
				Amenities: []string{"Rooftop Cafe", "Parking", "WiFi"}, MatchScore: 81},
		},
		Cuisines: []planner.Cuisine{
			{Type: "Rajasthani", Popularity: 93, Restaurants: []planner.Restaurant{
				{Name: "Chokhi Dhani", Dish: "Dal Baati Churma", Price: 900, Rating: 4.5,
					Reason: "Village-style experience with folk performances"},
				{Name: "Laxmi Misthan Bhandar", Dish: "Pyaaz Kachori", Price: 150, Rating: 4.6,
					Reason: "Century-old sweet house"},
				{Name: "Handi Restaurant", Dish: "Laal Maas", Price: 650, Rating: 4.4,
					Reason: "Signature fiery mutton curry"},
			}},
		},
		Transport: []planner.TransportMode{
			{Type: "Smart Cab", Efficiency: 85, Options: []planner.TransportOption{
				{Name: "Ola Prime", Price: 250, Time: "6 min", Capacity: "4",
					Features: []string{"Real-time tracking", "AC guaranteed"}},
				{Name: "Auto Rickshaw", Price: 120, Time: "4 min", Capacity: "3",
					Features: []string{"Metered fares", "City expert drivers"}},
			}},
			{Type: "Sightseeing", Efficiency: 80, Options: []planner.TransportOption{
				{Name: "Full-day Car Tour", Price: 2000, Time: "pre-booked", Capacity: "4",
					Features: []string{"Driver guide", "Fort circuit route"}},
			}},
		},
	},
}

// genericCatalog covers destinations we have no curated data for, in the same
// shape and price tiers as the curated cities.
func genericCatalog(destination string) planner.Catalog {
	return planner.Catalog{
		Accommodations: []planner.Accommodation{
			{ID: 1, Name: "Grand City Hotel", Type: "Luxury", Price: 12000, Rating: 4.5,
				Amenities: []string{"Pool", "Restaurant", "WiFi"}, MatchScore: 86},
			{ID: 2, Name: "Boutique Residence", Type: "Premium", Price: 7500, Rating: 4.4,
				Amenities: []string{"Breakfast", "Gym", "WiFi"}, MatchScore: 82},
			{ID: 3, Name: "Economy Suites", Type: "Budget", Price: 3000, Rating: 3.9,
				Amenities: []string{"Parking", "WiFi"}, MatchScore: 74},
		},
		Cuisines: []planner.Cuisine{
			{Type: "Local Specialties", Popularity: 85, Restaurants: []planner.Restaurant{
				{Name: "Heritage Kitchen", Dish: "Chef's Thali", Price: 700, Rating: 4.5,
					Reason: "Best-rated local cuisine in " + destination},
				{Name: "Market Street Eats", Dish: "Street Food Platter", Price: 300, Rating: 4.3,
					Reason: "Popular with locals, tourist friendly"},
				{Name: "The Terrace", Dish: "Seasonal Tasting Menu", Price: 1400, Rating: 4.6,
					Reason: "Fine dining with a view"},
			}},
		},
		Transport: []planner.TransportMode{
			{Type: "Smart Cab", Efficiency: 82, Options: []planner.TransportOption{
				{Name: "City Cab", Price: 300, Time: "8 min", Capacity: "4",
					Features: []string{"App booking", "Fixed fares"}},
				{Name: "Premium Cab", Price: 550, Time: "5 min", Capacity: "4",
					Features: []string{"Professional drivers", "AC guaranteed"}},
			}},
			{Type: "Public Transport", Efficiency: 70, Options: []planner.TransportOption{
				{Name: "Transit Day Pass", Price: 150, Time: "varies", Capacity: "Unlimited",
					Features: []string{"All city routes"}},
			}},
		},
	}
}
