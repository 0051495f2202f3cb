package services

import (
	"sync"

	"roamly/internal/models/request_models"
	"roamly/internal/models/response_models"
)

// SessionServiceInterface holds at most one (TripRequest, Itinerary) pair.
// The slot is replaced wholesale on every successful generation; a failed
// generation leaves the previous value visible. Last write wins if two
// generations somehow overlap.
type SessionServiceInterface interface {
	Set(req request_models.TripRequest, itinerary *response_models.Itinerary)
	Clear()
	Current() (request_models.TripRequest, *response_models.Itinerary, bool)
}

type SessionService struct {
	mu        sync.RWMutex
	request   request_models.TripRequest
	itinerary *response_models.Itinerary
}

func NewSessionService() SessionServiceInterface {
	return &SessionService{}
}

func (s *SessionService) Set(req request_models.TripRequest, itinerary *response_models.Itinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.request = req
	s.itinerary = itinerary
}

func (s *SessionService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.request = request_models.TripRequest{}
	s.itinerary = nil
}

func (s *SessionService) Current() (request_models.TripRequest, *response_models.Itinerary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.request, s.itinerary, s.itinerary != nil
}
