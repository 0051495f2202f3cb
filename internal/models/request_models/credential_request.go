package request_models

type SaveCredentialRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}
