// ABOUTME: Standardized error response types and helpers for HTTP handlers
// ABOUTME: Gives every API error the same {code,message,status} JSON shape

package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body of every API error.
//
// Usage:
//   WriteError(w, http.StatusNotFound, ErrNotFound, "account ACC0099 not found")
type ErrorResponse struct {
	Code    string `json:"code"`            // Machine-readable error code (e.g., "not_found")
	Message string `json:"message"`         // Human-readable error message
	Status  int    `json:"status"`          // HTTP status code
	Field   string `json:"field,omitempty"` // Optional: request parameter that caused the error
}

// WriteError writes a standardized error response.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeErrorResponse(w, ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
	})
}

// WriteErrorWithField writes an error that names the offending path or query parameter.
//
// Example:
//   WriteErrorWithField(w, http.StatusBadRequest, ErrInvalidID, "malformed account id", "id")
func WriteErrorWithField(w http.ResponseWriter, status int, code, message, field string) {
	writeErrorResponse(w, ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
		Field:   field,
	})
}

func writeErrorResponse(w http.ResponseWriter, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	json.NewEncoder(w).Encode(resp)
}

// Error codes returned by the API
const (
	// Client errors (4xx)
	ErrInvalidRequest   = "invalid_request"
	ErrInvalidID        = "invalid_id"
	ErrNotFound         = "not_found"
	ErrMethodNotAllowed = "method_not_allowed"

	// Server errors (5xx)
	ErrInternal = "internal_error"
)
