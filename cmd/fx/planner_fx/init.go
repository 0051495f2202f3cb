package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"roamly/internal/api/controllers"
	"roamly/internal/services"
	"roamly/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerClient,
	ProvidePromptBuilder,
	ProvideNormalizer,
	ProvideSessionService,
	ProvideViewService,
	ProvidePlannerService,
	ProvidePlannerController)

// ProvidePlannerClient creates the Gemini client from environment variables.
func ProvidePlannerClient() utils.PlannerClientInterface {
	model := getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	log.Printf("Initializing Gemini planner client with model: %s", model)
	return utils.NewGeminiPlannerClient(model)
}

func ProvidePromptBuilder() services.PromptBuilderInterface {
	return services.NewPromptBuilder()
}

func ProvideNormalizer() services.NormalizerInterface {
	return services.NewNormalizerService()
}

func ProvideSessionService() services.SessionServiceInterface {
	return services.NewSessionService()
}

func ProvideViewService() services.ViewServiceInterface {
	return services.NewViewService()
}

func ProvidePlannerService(
	prompts services.PromptBuilderInterface,
	client utils.PlannerClientInterface,
	normalizer services.NormalizerInterface,
	session services.SessionServiceInterface,
	credentials *services.CredentialStore,
	views services.ViewServiceInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(prompts, client, normalizer, session, credentials, views)
}

func ProvidePlannerController(plannerService services.PlannerServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService)
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
