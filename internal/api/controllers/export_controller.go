package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamly/internal/services"
	"roamly/pkg/utils"
)

type ExportController struct {
	exportService  services.ExportServiceInterface
	sessionService services.SessionServiceInterface
}

func NewExportController(
	exportService services.ExportServiceInterface,
	sessionService services.SessionServiceInterface,
) *ExportController {
	return &ExportController{
		exportService:  exportService,
		sessionService: sessionService,
	}
}

// ExportJSONHandler downloads the current itinerary as pretty-printed JSON.
func (e *ExportController) ExportJSONHandler(c *gin.Context) {
	_, itinerary, ok := e.sessionService.Current()
	if !ok {
		utils.HandleServiceError(c, utils.ErrNoItinerary)
		return
	}

	payload, err := e.exportService.ToJSON(itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filename := e.exportService.JSONFilename(itinerary.Destination)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", []byte(payload))
}

// ExportTextHandler downloads the current itinerary as a plain-text summary.
func (e *ExportController) ExportTextHandler(c *gin.Context) {
	_, itinerary, ok := e.sessionService.Current()
	if !ok {
		utils.HandleServiceError(c, utils.ErrNoItinerary)
		return
	}

	filename := e.exportService.TextFilename(itinerary.Destination)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(e.exportService.ToText(itinerary)))
}
