package services

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"roamly/internal/models/request_models"
	"roamly/internal/models/response_models"
	"roamly/pkg/utils"
)

// NormalizerInterface turns raw model text into a validated Itinerary.
// Validation is all-or-nothing on the top-level shape; nested records are
// left to the renderer, which tolerates missing fields.
type NormalizerInterface interface {
	Normalize(raw string, req request_models.TripRequest) (*response_models.Itinerary, error)
}

type NormalizerService struct{}

func NewNormalizerService() NormalizerInterface {
	return &NormalizerService{}
}

func (n *NormalizerService) Normalize(raw string, req request_models.TripRequest) (*response_models.Itinerary, error) {
	cleaned := extractJSONBlock(raw)

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &top); err != nil {
		// Valid JSON that is not an object has no usable top-level keys.
		if json.Valid([]byte(cleaned)) {
			return nil, &utils.SchemaMismatchError{Field: "overview"}
		}
		return nil, &utils.MalformedResponseError{Snippet: utils.BoundSnippet(cleaned)}
	}

	checks := []struct {
		field string
		check func(json.RawMessage) bool
	}{
		{"overview", isJSONString},
		{"daily_itineraries", isJSONArray},
		{"famous_attractions", isJSONArray},
		{"local_cuisine", isJSONArray},
		{"travel_tips", isJSONArray},
		{"packing_suggestions", isJSONArray},
		{"total_estimated_cost", isCoercibleNumber},
	}
	for _, c := range checks {
		rawField, ok := top[c.field]
		if !ok || !c.check(rawField) {
			return nil, &utils.SchemaMismatchError{Field: c.field}
		}
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(cleaned), &itinerary); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, &utils.SchemaMismatchError{Field: typeErr.Field}
		}
		return nil, &utils.MalformedResponseError{Snippet: utils.BoundSnippet(cleaned)}
	}
	if len(itinerary.DailyItineraries) == 0 {
		return nil, &utils.SchemaMismatchError{Field: "daily_itineraries"}
	}

	// The model is not trusted to echo the destination verbatim.
	itinerary.Destination = req.Destination

	return &itinerary, nil
}

// extractJSONBlock pulls the content of the first fenced code block out of
// the reply, preferring a ```json fence. Replies without fences are used
// verbatim, trimmed.
func extractJSONBlock(raw string) string {
	text := strings.TrimSpace(raw)
	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+len("```"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	return text
}

func isJSONString(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return strings.HasPrefix(s, `"`)
}

func isJSONArray(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return strings.HasPrefix(s, "[")
}

// isCoercibleNumber accepts a JSON number or a numeric string like "1500".
func isCoercibleNumber(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return false
		}
		_, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		return err == nil
	}
	var v float64
	return json.Unmarshal(raw, &v) == nil
}
