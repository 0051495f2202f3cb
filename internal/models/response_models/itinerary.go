package response_models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat unmarshals a JSON number or a numeric string. The model
// occasionally quotes cost values; nested records are rendered defensively,
// so a value that cannot be coerced decodes to zero instead of failing the
// whole itinerary. The normalizer checks the required top-level cost
// strictly before this type ever sees it.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

type Activity struct {
	Time        string    `json:"time"`
	Activity    string    `json:"activity"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Cost        FlexFloat `json:"cost"`
}

type Meal struct {
	Meal       string    `json:"meal"`
	Restaurant string    `json:"restaurant"`
	Cuisine    string    `json:"cuisine"`
	Cost       FlexFloat `json:"cost"`
}

type DayPlan struct {
	Day           int        `json:"day"`
	Title         string     `json:"title"`
	Activities    []Activity `json:"activities"`
	Meals         []Meal     `json:"meals"`
	EstimatedCost FlexFloat  `json:"estimated_cost"`
	TravelTips    string     `json:"travel_tips"`
}

// Itinerary is the validated travel plan produced from a model response.
// It is produced atomically by the normalizer; the session never holds a
// partially-filled value.
type Itinerary struct {
	Destination        string    `json:"destination"`
	Overview           string    `json:"overview"`
	DailyItineraries   []DayPlan `json:"daily_itineraries"`
	FamousAttractions  []string  `json:"famous_attractions"`
	LocalCuisine       []string  `json:"local_cuisine"`
	TravelTips         []string  `json:"travel_tips"`
	PackingSuggestions []string  `json:"packing_suggestions"`
	TotalEstimatedCost FlexFloat `json:"total_estimated_cost"`
}
