package server

import (
	"log/slog"
	"net/http"

	"teamchat/auth"
	"teamchat/observability"
	"teamchat/services"
)

type HealthReporter interface {
	Report() observability.HealthStatus
}

// Services groups what the HTTP layer calls into.
type Services struct {
	Auth           services.IAuthService
	Navigation     services.INavigationService
	Users          services.IUserService
	Workspaces     services.IWorkspaceService
	Channels       services.IChannelService
	Messages       services.IMessageService
	DirectMessages services.IDirectMessageService
}

type Handler struct {
	services Services
	health   HealthReporter
	log      *slog.Logger
}

func NewHandler(services Services, health HealthReporter, log *slog.Logger) *Handler {
	return &Handler{services: services, health: health, log: log}
}

// identity is only called behind RequireBearer, which always sets it.
func identity(r *http.Request) auth.Identity {
	id, _ := auth.IdentityFromContext(r.Context())
	return id
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.health.Report())
}
