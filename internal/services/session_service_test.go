package services

import (
	"testing"

	"roamly/internal/models/response_models"
)

func TestSessionSetClearCurrent(t *testing.T) {
	session := NewSessionService()

	if _, _, ok := session.Current(); ok {
		t.Fatal("fresh session should be empty")
	}

	req := validTripRequest()
	itinerary := &response_models.Itinerary{Destination: "Lisbon"}
	session.Set(req, itinerary)

	gotReq, gotItinerary, ok := session.Current()
	if !ok || gotItinerary.Destination != "Lisbon" || gotReq.Destination != "Lisbon" {
		t.Fatal("session did not hold the stored pair")
	}

	session.Clear()
	if _, _, ok := session.Current(); ok {
		t.Fatal("session should be empty after Clear")
	}
}

func TestSessionLastWriteWins(t *testing.T) {
	session := NewSessionService()

	first := validTripRequest()
	second := validTripRequest()
	second.Destination = "Porto"

	session.Set(first, &response_models.Itinerary{Destination: "Lisbon"})
	session.Set(second, &response_models.Itinerary{Destination: "Porto"})

	_, itinerary, ok := session.Current()
	if !ok || itinerary.Destination != "Porto" {
		t.Fatal("expected the last written itinerary to win")
	}
}
