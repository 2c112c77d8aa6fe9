package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type createWorkspaceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type addMemberRequest struct {
	UserEmail   string `json:"userEmail" validate:"required,email"`
	WorkspaceID string `json:"workspaceId" validate:"required"`
}

type createChannelRequest struct {
	Name        string `json:"name" validate:"required"`
	WorkspaceID string `json:"workspaceId" validate:"required"`
	Description string `json:"description"`
}

func (h *Handler) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.services.Workspaces.List(r.Context(), identity(r))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, workspaces)
}

func (h *Handler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var body createWorkspaceRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	workspace, err := h.services.Workspaces.Create(r.Context(), identity(r), body.Name, body.Description)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, workspace)
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	var body addMemberRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	membership, err := h.services.Workspaces.AddMember(r.Context(), identity(r), body.WorkspaceID, body.UserEmail)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, membership)
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.services.Workspaces.Members(r.Context(), identity(r), r.URL.Query().Get("workspaceId"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *Handler) ListChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.services.Channels.List(r.Context(), identity(r), r.URL.Query().Get("workspaceId"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, channels)
}

func (h *Handler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var body createChannelRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	channel, err := h.services.Channels.Create(r.Context(), identity(r), body.WorkspaceID, body.Name, body.Description)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, channel)
}

func (h *Handler) GetChannel(w http.ResponseWriter, r *http.Request) {
	channel, err := h.services.Channels.Get(r.Context(), identity(r), chi.URLParam(r, "channelId"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, channel)
}
