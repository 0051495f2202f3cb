package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamly/internal/models/request_models"
	"roamly/internal/services"
	"roamly/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// GenerateItineraryHandler runs one generation attempt for the submitted
// trip parameters and returns the rendered itinerary view.
func (p *PlannerController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	view, err := p.plannerService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Itinerary generated successfully")
}

// CurrentItineraryHandler returns the current view: the itinerary if one
// exists, otherwise the welcome view.
func (p *PlannerController) CurrentItineraryHandler(c *gin.Context) {
	utils.RespondSuccess(c, p.plannerService.CurrentView(), "Current view fetched successfully")
}

// ResetItineraryHandler clears the session slot ("Generate New").
func (p *PlannerController) ResetItineraryHandler(c *gin.Context) {
	p.plannerService.Reset()
	utils.RespondSuccess(c, p.plannerService.CurrentView(), "Itinerary cleared")
}

// ProgressLabelsHandler returns the scripted status label sequence shown
// while a generation is in flight.
func (p *PlannerController) ProgressLabelsHandler(c *gin.Context) {
	utils.RespondSuccess(c, p.plannerService.ProgressLabels(), "Progress labels fetched successfully")
}
