package services

import (
	"context"

	"roamly/internal/models/request_models"
)

// stubPlannerClient records calls and plays back a canned reply.
type stubPlannerClient struct {
	calls int
	reply string
	err   error
}

func (s *stubPlannerClient) Generate(ctx context.Context, prompt string, apiKey string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func validTripRequest() request_models.TripRequest {
	return request_models.TripRequest{
		Destination:   "Lisbon",
		Days:          3,
		People:        2,
		Budget:        "Medium",
		Interests:     []string{"Food", "Culture"},
		GroupType:     "Couple",
		Pace:          "Moderate",
		Accommodation: "Mid-range",
	}
}

// lisbonItineraryJSON is a well-formed 3-day model reply.
const lisbonItineraryJSON = `{
  "destination": "Model Echoed Name",
  "overview": "Lisbon blends historic charm with Atlantic light. Its hills hide miradouros and tiled facades. The food scene is outstanding.",
  "daily_itineraries": [
    {
      "day": 1,
      "title": "Alfama and the Castle",
      "activities": [
        {"time": "9:00 AM", "activity": "Castelo de Sao Jorge", "description": "Explore the hilltop castle", "duration": "2 hours", "cost": 15},
        {"time": "12:00 PM", "activity": "Alfama Walking Tour", "description": "Wander the oldest district", "duration": "2 hours", "cost": 0},
        {"time": "3:00 PM", "activity": "Fado Museum", "description": "Learn about Portuguese song", "duration": "1.5 hours", "cost": 10}
      ],
      "meals": [
        {"meal": "breakfast", "restaurant": "Pastelaria Santo Antonio", "cuisine": "Portuguese", "cost": 8},
        {"meal": "dinner", "restaurant": "Clube de Fado", "cuisine": "Portuguese", "cost": 45}
      ],
      "estimated_cost": 120,
      "travel_tips": "Wear comfortable shoes for the cobblestones"
    },
    {
      "day": 2,
      "title": "Belem and the River",
      "activities": [
        {"time": "9:30 AM", "activity": "Jeronimos Monastery", "description": "Manueline masterpiece", "duration": "2 hours", "cost": 12},
        {"time": "12:30 PM", "activity": "Belem Tower", "description": "Riverside fortress", "duration": "1 hour", "cost": 8},
        {"time": "3:00 PM", "activity": "MAAT", "description": "Modern art and architecture", "duration": "2 hours", "cost": 11}
      ],
      "meals": [
        {"meal": "breakfast", "restaurant": "Pasteis de Belem", "cuisine": "Pastry", "cost": 6},
        {"meal": "lunch", "restaurant": "Darwin Cafe", "cuisine": "Mediterranean", "cost": 25}
      ],
      "estimated_cost": 110,
      "travel_tips": "Buy monastery tickets online to skip the line"
    },
    {
      "day": 3,
      "title": "Sintra Day Trip",
      "activities": [
        {"time": "8:30 AM", "activity": "Pena Palace", "description": "Romanticist palace in the hills", "duration": "3 hours", "cost": 20},
        {"time": "1:00 PM", "activity": "Quinta da Regaleira", "description": "Gardens and the initiation well", "duration": "2 hours", "cost": 12},
        {"time": "4:00 PM", "activity": "Sintra Old Town", "description": "Browse the historic center", "duration": "1.5 hours", "cost": 0}
      ],
      "meals": [
        {"meal": "lunch", "restaurant": "Tascantiga", "cuisine": "Petiscos", "cost": 22}
      ],
      "estimated_cost": 140,
      "travel_tips": "Take the early train from Rossio station"
    }
  ],
  "famous_attractions": ["Belem Tower", "Jeronimos Monastery", "Pena Palace", "Castelo de Sao Jorge"],
  "local_cuisine": ["Pasteis de nata", "Bacalhau a bras", "Bifana"],
  "travel_tips": ["Validate transit cards before boarding", "Carry some cash for small cafes"],
  "packing_suggestions": ["Comfortable shoes", "Light jacket", "Sunscreen"],
  "total_estimated_cost": 1200
}`
