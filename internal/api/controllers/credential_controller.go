package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamly/internal/models/request_models"
	"roamly/internal/models/response_models"
	"roamly/internal/services"
	"roamly/pkg/utils"
)

type CredentialController struct {
	store *services.CredentialStore
}

func NewCredentialController(store *services.CredentialStore) *CredentialController {
	return &CredentialController{
		store: store,
	}
}

// SaveCredentialHandler stores a session API key override. The saved key
// takes precedence over the environment value for the rest of the session.
func (cc *CredentialController) SaveCredentialHandler(c *gin.Context) {
	var req request_models.SaveCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.APIKey == "" {
		utils.RespondError(c, http.StatusBadRequest, "api_key is required")
		return
	}

	cc.store.Save(req.APIKey)
	utils.RespondSuccess(c, response_models.CredentialStatus{Configured: cc.store.Configured()}, "API key saved successfully")
}

// CredentialStatusHandler reports whether a key is configured. The key
// itself is never echoed back.
func (cc *CredentialController) CredentialStatusHandler(c *gin.Context) {
	utils.RespondSuccess(c, response_models.CredentialStatus{Configured: cc.store.Configured()}, "Credential status fetched successfully")
}
