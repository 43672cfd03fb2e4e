// Package respond writes the service's JSON response envelope.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/notekit/notekit/internal/model"
	"github.com/notekit/notekit/internal/validate"
)

// envelope is the body shape for successful JSON responses. Data is always
// present, even when it is an empty list.
type envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination *pagination `json:"pagination,omitempty"`
}

// errorEnvelope is the body shape for failures.
type errorEnvelope struct {
	Success    bool                `json:"success"`
	Error      string              `json:"error"`
	Violations validate.Violations `json:"violations,omitempty"`
}

type pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// WriteJSON writes an arbitrary body with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteData writes a success envelope around data.
func WriteData(w http.ResponseWriter, statusCode int, data interface{}) {
	WriteJSON(w, statusCode, envelope{Success: true, Data: data})
}

// WritePage writes a success envelope for a listing, with pagination metadata.
func WritePage(w http.ResponseWriter, page *model.NotePage) {
	WriteJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    page.Items,
		Pagination: &pagination{
			Total:   page.Total,
			Limit:   page.Limit,
			Offset:  page.Offset,
			HasMore: page.HasMore,
		},
	})
}

// WriteError writes a failure envelope with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, errorEnvelope{Error: message})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}

// WriteViolations writes a 400 carrying the full per-field violation list.
func WriteViolations(w http.ResponseWriter, vs validate.Violations) {
	WriteJSON(w, http.StatusBadRequest, errorEnvelope{Error: "validation failed", Violations: vs})
}
