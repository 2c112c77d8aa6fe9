package server

import (
	"encoding/json"
	"io"
	"net/http"

	"teamchat/domain"
)

// saveStateRequest keeps raw values: a field of the wrong JSON type is
// treated like a malformed identifier and cleared, not rejected.
type saveStateRequest struct {
	LastWorkspace any `json:"lastWorkspace"`
	LastChannel   any `json:"lastChannel"`
	LastMessage   any `json:"lastMessage"`
}

type resumeResponse struct {
	domain.Target
	Path string `json:"path"`
}

func asString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// SaveState accepts any subset of the triple. Malformed or missing fields are
// stored as null.
func (h *Handler) SaveState(w http.ResponseWriter, r *http.Request) {
	var body saveStateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		writeError(w, r, h.log, validationError(err))
		return
	}
	state := domain.LastState{
		LastWorkspace: asString(body.LastWorkspace),
		LastChannel:   asString(body.LastChannel),
		LastMessage:   asString(body.LastMessage),
	}
	if err := h.services.Navigation.Save(r.Context(), identity(r), state); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "State saved successfully"})
}

// Resume exposes the landing view computed from the stored state.
func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
	target, err := h.services.Navigation.Resolve(r.Context(), identity(r))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resumeResponse{Target: target, Path: target.Path()})
}
