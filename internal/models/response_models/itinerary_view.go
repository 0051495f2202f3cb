package response_models

// TripMetrics is the headline metric row shown above the day cards.
type TripMetrics struct {
	TotalCost       float64 `json:"total_cost"`
	PerPersonCost   float64 `json:"per_person_cost"`
	DurationDays    int     `json:"duration_days"`
	AttractionCount int     `json:"attraction_count"`
}

// ItineraryView is the render-ready shape of a generated itinerary.
type ItineraryView struct {
	Destination        string      `json:"destination"`
	Overview           string      `json:"overview"`
	Metrics            TripMetrics `json:"metrics"`
	Days               []DayPlan   `json:"days"`
	FamousAttractions  []string    `json:"famous_attractions"`
	LocalCuisine       []string    `json:"local_cuisine"`
	TravelTips         []string    `json:"travel_tips"`
	PackingSuggestions []string    `json:"packing_suggestions"`
}

// WelcomeView is rendered while no itinerary exists yet.
type WelcomeView struct {
	Headline            string   `json:"headline"`
	Features            []string `json:"features"`
	PopularDestinations []string `json:"popular_destinations"`
	Notice              string   `json:"notice"`
}

// PlannerView is the top-level render tree: exactly one of Itinerary or
// Welcome is set, keyed by HasItinerary.
type PlannerView struct {
	HasItinerary bool           `json:"has_itinerary"`
	Itinerary    *ItineraryView `json:"itinerary,omitempty"`
	Welcome      *WelcomeView   `json:"welcome,omitempty"`
}

// CredentialStatus reports whether a usable API key is configured without
// ever echoing the key itself.
type CredentialStatus struct {
	Configured bool `json:"configured"`
}
