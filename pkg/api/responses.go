package api

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error half of the response envelope. Code is a stable
// machine string; Details carries field-level context when present.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// respondData writes the success envelope {"data": ...}.
func respondData(c *gin.Context, status int, v any) {
	c.JSON(status, gin.H{"data": v})
}

// respondError writes the error envelope {"error": {code, message, details?}}
// and aborts the handler chain.
func respondError(c *gin.Context, status int, code, message string, details ...any) {
	body := ErrorBody{Code: code, Message: message}
	if len(details) > 0 {
		body.Details = details[0]
	}
	c.AbortWithStatusJSON(status, gin.H{"error": body})
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is the status of a single subsystem.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
