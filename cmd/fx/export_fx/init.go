package export_fx

import (
	"go.uber.org/fx"

	"roamly/internal/api/controllers"
	"roamly/internal/services"
)

var Module = fx.Provide(
	ProvideExportService,
	ProvideExportController)

func ProvideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func ProvideExportController(
	exportService services.ExportServiceInterface,
	sessionService services.SessionServiceInterface,
) *controllers.ExportController {
	return controllers.NewExportController(exportService, sessionService)
}
