package request_models

import (
	"fmt"
	"strings"

	"roamly/pkg/utils"
)

// Fixed vocabularies for the trip form. The model prompt interpolates these
// values verbatim, so they are validated against the lists below before any
// generation happens.
var (
	BudgetOptions        = []string{"Low", "Medium", "High"}
	InterestOptions      = []string{"Culture", "Food", "Adventure", "Nature", "Shopping", "History", "Nightlife", "Relaxation"}
	GroupTypeOptions     = []string{"Solo", "Couple", "Family", "Friends"}
	PaceOptions          = []string{"Relaxed", "Moderate", "Packed"}
	AccommodationOptions = []string{"Budget", "Mid-range", "Luxury"}
)

const (
	MinDays   = 1
	MaxDays   = 30
	MinPeople = 1
	MaxPeople = 20
)

type TripRequest struct {
	Destination   string   `json:"destination"`
	Days          int      `json:"days"`
	People        int      `json:"people"`
	Budget        string   `json:"budget"`
	Interests     []string `json:"interests"`
	GroupType     string   `json:"group_type"`
	Pace          string   `json:"pace"`
	Accommodation string   `json:"accommodation"`
}

// ApplyDefaults fills zero-valued optional fields with the form defaults.
// Destination and interests stay untouched: they are required and an empty
// value must be rejected, not papered over.
func (r *TripRequest) ApplyDefaults() {
	if r.Days == 0 {
		r.Days = 5
	}
	if r.People == 0 {
		r.People = 2
	}
	if r.Budget == "" {
		r.Budget = "Medium"
	}
	if r.GroupType == "" {
		r.GroupType = "Solo"
	}
	if r.Pace == "" {
		r.Pace = "Relaxed"
	}
	if r.Accommodation == "" {
		r.Accommodation = "Budget"
	}
}

// Validate checks the request against the form constraints. A request that
// fails validation never reaches the model client.
func (r *TripRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}
	if r.Days < MinDays || r.Days > MaxDays {
		return fmt.Errorf("%w: days must be between %d and %d", utils.ErrInvalidInput, MinDays, MaxDays)
	}
	if r.People < MinPeople || r.People > MaxPeople {
		return fmt.Errorf("%w: people must be between %d and %d", utils.ErrInvalidInput, MinPeople, MaxPeople)
	}
	if !contains(BudgetOptions, r.Budget) {
		return fmt.Errorf("%w: unknown budget %q", utils.ErrInvalidInput, r.Budget)
	}
	if len(r.Interests) == 0 {
		return fmt.Errorf("%w: at least one interest is required", utils.ErrInvalidInput)
	}
	for _, interest := range r.Interests {
		if !contains(InterestOptions, interest) {
			return fmt.Errorf("%w: unknown interest %q", utils.ErrInvalidInput, interest)
		}
	}
	if !contains(GroupTypeOptions, r.GroupType) {
		return fmt.Errorf("%w: unknown group type %q", utils.ErrInvalidInput, r.GroupType)
	}
	if !contains(PaceOptions, r.Pace) {
		return fmt.Errorf("%w: unknown pace %q", utils.ErrInvalidInput, r.Pace)
	}
	if !contains(AccommodationOptions, r.Accommodation) {
		return fmt.Errorf("%w: unknown accommodation %q", utils.ErrInvalidInput, r.Accommodation)
	}
	return nil
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
