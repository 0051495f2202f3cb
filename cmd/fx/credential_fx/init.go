package credential_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"roamly/internal/api/controllers"
	"roamly/internal/services"
)

var Module = fx.Provide(
	ProvideCredentialStore,
	ProvideCredentialController)

// ProvideCredentialStore captures GEMINI_API_KEY at startup. The key is
// optional at boot: the user can save one through the API later.
func ProvideCredentialStore() *services.CredentialStore {
	envKey := os.Getenv("GEMINI_API_KEY")
	if envKey == "" {
		log.Println("GEMINI_API_KEY not set; waiting for a session-supplied key")
	}
	return services.NewCredentialStore(envKey)
}

func ProvideCredentialController(store *services.CredentialStore) *controllers.CredentialController {
	return controllers.NewCredentialController(store)
}
