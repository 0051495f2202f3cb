package services

import (
	"fmt"
	"strings"

	"roamly/internal/models/request_models"
)

// PromptBuilderInterface turns a validated trip request into the model
// prompt. Pure and deterministic: the same request always yields a
// byte-identical prompt.
type PromptBuilderInterface interface {
	BuildItineraryPrompt(req request_models.TripRequest) string
}

type PromptBuilder struct{}

func NewPromptBuilder() PromptBuilderInterface {
	return &PromptBuilder{}
}

// activityGuidance maps the requested pace to a per-day activity count the
// model is asked to honor.
func activityGuidance(pace string) string {
	switch pace {
	case "Relaxed":
		return "2-3"
	case "Packed":
		return "4-5"
	default:
		return "3-4"
	}
}

func (p *PromptBuilder) BuildItineraryPrompt(req request_models.TripRequest) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("You are an expert travel planner. Create a detailed %d-day travel itinerary for %s.\n\n", req.Days, req.Destination))

	prompt.WriteString("Trip Details:\n")
	prompt.WriteString(fmt.Sprintf("- Travelers: %d %s\n", req.People, req.GroupType))
	prompt.WriteString(fmt.Sprintf("- Budget: %s\n", req.Budget))
	prompt.WriteString(fmt.Sprintf("- Interests: %s\n", strings.Join(req.Interests, ", ")))
	prompt.WriteString(fmt.Sprintf("- Pace: %s\n", req.Pace))
	prompt.WriteString(fmt.Sprintf("- Accommodation: %s\n\n", req.Accommodation))

	prompt.WriteString("Provide a comprehensive itinerary in JSON format with this EXACT structure:\n")
	prompt.WriteString(`{
    "overview": "Brief 3-sentence overview of the destination and what makes it special",
    "daily_itineraries": [
        {
            "day": 1,
            "title": "Descriptive day title",
            "activities": [
                {
                    "time": "9:00 AM",
                    "activity": "Activity name",
                    "description": "Detailed description",
                    "duration": "2 hours",
                    "cost": 50
                }
            ],
            "meals": [
                {
                    "meal": "breakfast",
                    "restaurant": "Restaurant name",
                    "cuisine": "Cuisine type",
                    "cost": 20
                }
            ],
            "estimated_cost": 200,
            "travel_tips": "Specific tips for this day"
        }
    ],
    "famous_attractions": ["attraction1", "attraction2", "..."],
    "local_cuisine": ["dish1", "dish2", "..."],
    "travel_tips": ["tip1", "tip2", "..."],
    "packing_suggestions": ["item1", "item2", "..."],
    "total_estimated_cost": 1500
}
`)

	prompt.WriteString("\nImportant:\n")
	prompt.WriteString(fmt.Sprintf("- Include %s activities per day for %s pace\n", activityGuidance(req.Pace), req.Pace))
	prompt.WriteString("- All costs in USD\n")
	prompt.WriteString(fmt.Sprintf("- Make it realistic and specific to %s\n", req.Destination))
	prompt.WriteString(fmt.Sprintf("- Consider %s budget level\n", req.Budget))
	prompt.WriteString("- Return ONLY valid JSON, no markdown formatting")

	return prompt.String()
}
