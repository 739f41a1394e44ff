package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the error envelope
const (
	CodeValidationFailed = "validation_failed"
	CodeInvalidJSON      = "invalid_json"
	CodeInvalidID        = "invalid_id"
	CodeNotFound         = "not_found"
	CodeChatUnavailable  = "chat_unavailable"
	CodeInternal         = "internal"
)

const internalMessage = "Internal server error"

// FieldError names one rejected request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the body of every error response
type APIError struct {
	Message string       `json:"message"`
	Code    string       `json:"code,omitempty"`
	Detail  string       `json:"detail,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// ErrorEnvelope wraps APIError under an "error" key
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, apiErr APIError) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: apiErr})
}

func respondNotFound(c *gin.Context, entity string) {
	respondError(c, http.StatusNotFound, APIError{Message: entity + " not found", Code: CodeNotFound})
}

func respondInternal(c *gin.Context, err error) {
	apiErr := APIError{Message: internalMessage, Code: CodeInternal}
	if err != nil {
		apiErr.Detail = err.Error()
	}
	respondError(c, http.StatusInternalServerError, apiErr)
}
