package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"teamchat/auth"
	"teamchat/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to its status code. Internal errors are
// logged and never leaked to the caller.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := errors.MapToHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = "internal server error"
	}
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeBody reads a JSON body and applies its `validate` tags.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return validationError(err)
	}
	return auth.ValidateStruct(v)
}

func validationError(err error) error {
	return fmt.Errorf("%w: invalid JSON body: %v", errors.ErrValidation, err)
}
