package server

import (
	"net/http"

	"teamchat/domain"
)

type postMessageRequest struct {
	ChannelID string `json:"channelId" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

type sendDirectMessageRequest struct {
	ReceiverEmail string  `json:"receiverEmail" validate:"required,email"`
	Content       string  `json:"content" validate:"required"`
	WorkspaceID   *string `json:"workspaceId"`
}

type messagesPage struct {
	Messages   []domain.Message `json:"messages"`
	NextCursor *string          `json:"next_cursor"`
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var cursor *string
	if c := query.Get("cursor"); c != "" {
		cursor = &c
	}
	messages, next, err := h.services.Messages.List(r.Context(), identity(r), query.Get("channelId"), cursor)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messagesPage{Messages: messages, NextCursor: next})
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var body postMessageRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	message, err := h.services.Messages.Post(r.Context(), identity(r), body.ChannelID, body.Content)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

func (h *Handler) Mentions(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.Messages.Mentions(r.Context(), identity(r))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	hits, err := h.services.Messages.Search(r.Context(), identity(r), r.URL.Query().Get("term"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, hits)
}

func (h *Handler) DirectMessages(w http.ResponseWriter, r *http.Request) {
	thread, err := h.services.DirectMessages.Thread(r.Context(), identity(r), r.URL.Query().Get("otherUserEmail"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, thread)
}

func (h *Handler) SendDirectMessage(w http.ResponseWriter, r *http.Request) {
	var body sendDirectMessageRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	message, err := h.services.DirectMessages.Send(r.Context(), identity(r), body.ReceiverEmail, body.Content, body.WorkspaceID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

func (h *Handler) Conversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.services.DirectMessages.Conversations(r.Context(), identity(r))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, conversations)
}
