// Package api implements HTTP handlers for the order intake service.
package api

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Internal error"`
}

// ShapeErrorResponse is returned when the order document is malformed.
type ShapeErrorResponse struct {
	Error map[string][]string `json:"error"`
}

// ValidationErrorResponse is returned when the order breaks a business rule.
// Error is the stringified mapping; Fields carries the same mapping as JSON.
type ValidationErrorResponse struct {
	Error  string              `json:"error" example:"name: [Name is not capitalized]"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// BadRequestResponse documents the two 400 bodies of POST /orders. A
// malformed order gets a ShapeErrorResponse, where error is an object mapping
// field paths to messages. A business rule violation gets a
// ValidationErrorResponse, where error is a string and fields holds the mapping.
type BadRequestResponse struct {
	Error  interface{}         `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
