package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service errors to HTTP responses. Generation and
// normalization failures are terminal for the attempt; the previous
// itinerary, if any, stays in place and the client may simply resubmit.
func HandleServiceError(c *gin.Context, err error) {
	var malformed *MalformedResponseError
	var mismatch *SchemaMismatchError

	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrMissingAPIKey):
		RespondError(c, http.StatusUnauthorized, "API key is missing or not configured")
	case errors.Is(err, ErrNoItinerary):
		RespondError(c, http.StatusNotFound, "No itinerary has been generated yet")
	case errors.Is(err, ErrModelTransport):
		log.Printf("Model transport error: %v", err)
		RespondError(c, http.StatusBadGateway, "Failed to reach the AI service, please try again")
	case errors.Is(err, ErrModelProvider):
		log.Printf("Model provider error: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.As(err, &malformed):
		log.Printf("Malformed model response: %s", malformed.Snippet)
		RespondError(c, http.StatusBadGateway, "Failed to parse AI response, please try again")
	case errors.As(err, &mismatch):
		log.Printf("Schema mismatch in model response: %s", mismatch.Field)
		RespondError(c, http.StatusBadGateway, "AI response had an unexpected shape ("+mismatch.Field+"), please try again")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
