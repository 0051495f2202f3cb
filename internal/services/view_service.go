package services

import (
	"roamly/internal/models/request_models"
	"roamly/internal/models/response_models"
)

// ViewServiceInterface maps session state to render-ready view models.
// Pure: no I/O, no mutation of its inputs.
type ViewServiceInterface interface {
	Render(req request_models.TripRequest, itinerary *response_models.Itinerary, keyConfigured bool) *response_models.PlannerView
	ProgressLabels() []string
}

type ViewService struct{}

func NewViewService() ViewServiceInterface {
	return &ViewService{}
}

// progressLabels is the fixed, purely cosmetic status sequence shown while
// a generation is in flight. It is not tied to real sub-task completion.
var progressLabels = []string{
	"Understanding your travel style...",
	"Researching destination information...",
	"AI is processing thousands of possibilities...",
	"Optimizing itinerary based on your budget...",
	"Generating personalized recommendations...",
}

var popularDestinations = []string{"Paris, France", "Tokyo, Japan", "New York, USA", "Bali, Indonesia"}

var welcomeFeatures = []string{
	"Machine Learning: advanced AI algorithms analyze your preferences",
	"Personalized: custom itineraries based on your unique needs",
	"Instant Results: generate complete plans in seconds",
}

func (v *ViewService) ProgressLabels() []string {
	out := make([]string, len(progressLabels))
	copy(out, progressLabels)
	return out
}

func (v *ViewService) Render(req request_models.TripRequest, itinerary *response_models.Itinerary, keyConfigured bool) *response_models.PlannerView {
	if itinerary == nil {
		notice := "Get started: configure your Google Gemini API key to unlock AI-powered planning."
		if keyConfigured {
			notice = "Ready to go! Fill in your travel details and generate your AI itinerary."
		}
		return &response_models.PlannerView{
			HasItinerary: false,
			Welcome: &response_models.WelcomeView{
				Headline:            "AI-Powered Travel Planning",
				Features:            welcomeFeatures,
				PopularDestinations: popularDestinations,
				Notice:              notice,
			},
		}
	}

	total := float64(itinerary.TotalEstimatedCost)
	perPerson := 0.0
	// The form floor is 1, but the renderer must not assume it.
	if req.People > 0 {
		perPerson = total / float64(req.People)
	}

	return &response_models.PlannerView{
		HasItinerary: true,
		Itinerary: &response_models.ItineraryView{
			Destination: itinerary.Destination,
			Overview:    itinerary.Overview,
			Metrics: response_models.TripMetrics{
				TotalCost:       total,
				PerPersonCost:   perPerson,
				DurationDays:    req.Days,
				AttractionCount: len(itinerary.FamousAttractions),
			},
			Days:               itinerary.DailyItineraries,
			FamousAttractions:  itinerary.FamousAttractions,
			LocalCuisine:       itinerary.LocalCuisine,
			TravelTips:         itinerary.TravelTips,
			PackingSuggestions: itinerary.PackingSuggestions,
		},
	}
}
