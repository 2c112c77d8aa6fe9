package server

import (
	"net/http"

	"teamchat/domain"
	"teamchat/errors"
	"teamchat/services"
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	services.Session
}

type validateTokenResponse struct {
	Valid     bool              `json:"valid"`
	Email     string            `json:"email,omitempty"`
	Username  string            `json:"username,omitempty"`
	LastState *domain.LastState `json:"last_state,omitempty"`
	Error     string            `json:"error,omitempty"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	session, err := h.services.Auth.Register(r.Context(), body.Email, body.Username, body.Password)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// Login takes its credentials from the query string: identifier is an email
// or a username.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	session, err := h.services.Auth.Login(r.Context(), query.Get("identifier"), query.Get("password"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Message: "Login successful", Session: session})
}

// ValidateToken answers {valid:false} with a 404 when the token is sound but
// its user no longer exists.
func (h *Handler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	session, err := h.services.Auth.ValidateToken(r.Context(), identity(r))
	if errors.Is(err, errors.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, validateTokenResponse{Valid: false, Error: "user not found"})
		return
	}
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, validateTokenResponse{
		Valid:     true,
		Email:     session.Email,
		Username:  session.Username,
		LastState: &session.LastState,
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.Users.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
