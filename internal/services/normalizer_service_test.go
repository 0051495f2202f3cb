package services

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"roamly/internal/models/response_models"
	"roamly/pkg/utils"
)

func TestNormalizeInjectsDestination(t *testing.T) {
	normalizer := NewNormalizerService()

	itinerary, err := normalizer.Normalize(lisbonItineraryJSON, validTripRequest())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	// The reply echoes a different name; the request's destination wins.
	if itinerary.Destination != "Lisbon" {
		t.Fatalf("expected destination Lisbon, got %q", itinerary.Destination)
	}
	if len(itinerary.DailyItineraries) != 3 {
		t.Fatalf("expected 3 days, got %d", len(itinerary.DailyItineraries))
	}
	if itinerary.TotalEstimatedCost != 1200 {
		t.Fatalf("expected total 1200, got %v", itinerary.TotalEstimatedCost)
	}
}

func TestNormalizeFencedAndBareAreEquivalent(t *testing.T) {
	normalizer := NewNormalizerService()
	req := validTripRequest()

	bare, err := normalizer.Normalize(lisbonItineraryJSON, req)
	if err != nil {
		t.Fatalf("bare: %v", err)
	}
	fenced, err := normalizer.Normalize("```json\n"+lisbonItineraryJSON+"\n```", req)
	if err != nil {
		t.Fatalf("fenced: %v", err)
	}
	plainFence, err := normalizer.Normalize("```\n"+lisbonItineraryJSON+"\n```", req)
	if err != nil {
		t.Fatalf("plain fence: %v", err)
	}

	if !reflect.DeepEqual(bare, fenced) || !reflect.DeepEqual(bare, plainFence) {
		t.Fatal("fenced and bare replies should normalize to the same itinerary")
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	normalizer := NewNormalizerService()
	req := validTripRequest()

	original, err := normalizer.Normalize(lisbonItineraryJSON, req)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	serialized, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	again, err := normalizer.Normalize(string(serialized), req)
	if err != nil {
		t.Fatalf("re-normalize: %v", err)
	}

	if !reflect.DeepEqual(original, again) {
		t.Fatal("round-trip changed the itinerary")
	}
}

func TestNormalizeMalformedJSON(t *testing.T) {
	normalizer := NewNormalizerService()

	// Over 500 chars of truncated JSON: the snippet must stay bounded.
	raw := `{"overview": "` + strings.Repeat("x", 2000)

	_, err := normalizer.Normalize(raw, validTripRequest())
	var malformed *utils.MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
	if len(malformed.Snippet) > utils.MaxSnippetLen {
		t.Fatalf("snippet length %d exceeds bound %d", len(malformed.Snippet), utils.MaxSnippetLen)
	}
}

func TestNormalizeMissingRequiredField(t *testing.T) {
	normalizer := NewNormalizerService()

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(lisbonItineraryJSON), &doc); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	delete(doc, "daily_itineraries")
	raw, _ := json.Marshal(doc)

	_, err := normalizer.Normalize(string(raw), validTripRequest())
	var mismatch *utils.SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected SchemaMismatchError, got %v", err)
	}
	if mismatch.Field != "daily_itineraries" {
		t.Fatalf("expected field daily_itineraries, got %q", mismatch.Field)
	}
}

func TestNormalizeWrongKindField(t *testing.T) {
	normalizer := NewNormalizerService()

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(lisbonItineraryJSON), &doc); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	doc["overview"] = json.RawMessage(`42`)
	raw, _ := json.Marshal(doc)

	_, err := normalizer.Normalize(string(raw), validTripRequest())
	var mismatch *utils.SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected SchemaMismatchError, got %v", err)
	}
	if mismatch.Field != "overview" {
		t.Fatalf("expected field overview, got %q", mismatch.Field)
	}
}

func TestNormalizeCoercesNumericStringTotal(t *testing.T) {
	normalizer := NewNormalizerService()

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(lisbonItineraryJSON), &doc); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	doc["total_estimated_cost"] = json.RawMessage(`"1500"`)
	raw, _ := json.Marshal(doc)

	itinerary, err := normalizer.Normalize(string(raw), validTripRequest())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if itinerary.TotalEstimatedCost != 1500 {
		t.Fatalf("expected coerced total 1500, got %v", itinerary.TotalEstimatedCost)
	}

	// Non-coercible values fail validation.
	doc["total_estimated_cost"] = json.RawMessage(`"about a grand"`)
	raw, _ = json.Marshal(doc)
	_, err = normalizer.Normalize(string(raw), validTripRequest())
	var mismatch *utils.SchemaMismatchError
	if !errors.As(err, &mismatch) || mismatch.Field != "total_estimated_cost" {
		t.Fatalf("expected mismatch on total_estimated_cost, got %v", err)
	}
}

func TestFlexFloatLenientOnNestedGarbage(t *testing.T) {
	var activity response_models.Activity
	if err := json.Unmarshal([]byte(`{"time":"9:00 AM","activity":"Walk","cost":"free"}`), &activity); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if activity.Cost != 0 {
		t.Fatalf("expected garbage nested cost to decode as 0, got %v", activity.Cost)
	}
}
