package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"roamly/internal/models/response_models"
)

// ExportServiceInterface serializes an itinerary for download. Both formats
// are pure functions of the itinerary value. The text report is a quick
// summary: it deliberately omits meals and the auxiliary lists.
type ExportServiceInterface interface {
	ToJSON(itinerary *response_models.Itinerary) (string, error)
	ToText(itinerary *response_models.Itinerary) string
	JSONFilename(destination string) string
	TextFilename(destination string) string
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

func (e *ExportService) ToJSON(itinerary *response_models.Itinerary) (string, error) {
	out, err := json.MarshalIndent(itinerary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal itinerary: %w", err)
	}
	return string(out), nil
}

func (e *ExportService) ToText(itinerary *response_models.Itinerary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("AI-GENERATED ITINERARY: %s\n", itinerary.Destination))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("OVERVIEW:\n%s\n\n", itinerary.Overview))
	b.WriteString(fmt.Sprintf("TOTAL COST: $%s\n\n", formatCost(float64(itinerary.TotalEstimatedCost))))

	for _, day := range itinerary.DailyItineraries {
		b.WriteString(fmt.Sprintf("\nDAY %d: %s\n", day.Day, day.Title))
		b.WriteString(fmt.Sprintf("Budget: $%s\n\n", formatCost(float64(day.EstimatedCost))))
		for _, act := range day.Activities {
			b.WriteString(fmt.Sprintf("  %s - %s\n", act.Time, act.Activity))
			b.WriteString(fmt.Sprintf("    %s\n", act.Description))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (e *ExportService) JSONFilename(destination string) string {
	return exportFilename(destination, "json")
}

func (e *ExportService) TextFilename(destination string) string {
	return exportFilename(destination, "txt")
}

func exportFilename(destination, ext string) string {
	return fmt.Sprintf("ai_itinerary_%s.%s", strings.ReplaceAll(destination, " ", "_"), ext)
}

// formatCost renders whole-dollar amounts without a decimal point.
func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
