// Package httputil centralizes JSON response writing so handlers stay
// consistent about envelopes and status codes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"sitedoctor/pkg/platform/sentinel"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates sentinel errors to HTTP statuses. Unknown errors
// map to 500 with the detail withheld from the client.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"
	description := ""

	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
		description = err.Error()
	case errors.Is(err, sentinel.ErrInvalidState):
		status = http.StatusConflict
		code = "invalid_state"
		description = err.Error()
	case errors.Is(err, sentinel.ErrUnavailable):
		status = http.StatusServiceUnavailable
		code = "unavailable"
		description = err.Error()
	}

	body := map[string]string{"error": code}
	if description != "" {
		body["error_description"] = description
	}
	WriteJSON(w, status, body)
}
