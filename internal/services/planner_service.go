package services

import (
	"context"
	"log"

	"roamly/internal/models/request_models"
	"roamly/internal/models/response_models"
	"roamly/pkg/utils"
)

// PlannerServiceInterface orchestrates a generation attempt: validate the
// request, resolve the credential, call the model once, normalize, and
// replace the session slot. Any failure leaves the session untouched.
type PlannerServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.TripRequest) (*response_models.PlannerView, error)
	CurrentView() *response_models.PlannerView
	Reset()
	ProgressLabels() []string
}

type PlannerService struct {
	prompts     PromptBuilderInterface
	client      utils.PlannerClientInterface
	normalizer  NormalizerInterface
	session     SessionServiceInterface
	credentials *CredentialStore
	views       ViewServiceInterface
}

func NewPlannerService(
	prompts PromptBuilderInterface,
	client utils.PlannerClientInterface,
	normalizer NormalizerInterface,
	session SessionServiceInterface,
	credentials *CredentialStore,
	views ViewServiceInterface,
) PlannerServiceInterface {
	return &PlannerService{
		prompts:     prompts,
		client:      client,
		normalizer:  normalizer,
		session:     session,
		credentials: credentials,
		views:       views,
	}
}

func (p *PlannerService) GeneratePlan(ctx context.Context, req request_models.TripRequest) (*response_models.PlannerView, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Credential gate comes before any client invocation.
	apiKey, ok := p.credentials.Resolve()
	if !ok {
		return nil, utils.ErrMissingAPIKey
	}

	prompt := p.prompts.BuildItineraryPrompt(req)

	raw, err := p.client.Generate(ctx, prompt, apiKey)
	if err != nil {
		log.Printf("Generation failed for %q: %v", req.Destination, err)
		return nil, err
	}

	itinerary, err := p.normalizer.Normalize(raw, req)
	if err != nil {
		log.Printf("Normalization failed for %q: %v", req.Destination, err)
		return nil, err
	}

	p.session.Set(req, itinerary)

	return p.views.Render(req, itinerary, true), nil
}

func (p *PlannerService) CurrentView() *response_models.PlannerView {
	req, itinerary, _ := p.session.Current()
	return p.views.Render(req, itinerary, p.credentials.Configured())
}

func (p *PlannerService) Reset() {
	p.session.Clear()
}

func (p *PlannerService) ProgressLabels() []string {
	return p.views.ProgressLabels()
}
