package server

import (
	"log/slog"
	"net/http"
	"time"

	"teamchat/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter mounts the public routes and the bearer protected API under /v0.
func NewRouter(h *Handler, verifier auth.TokenVerifier, allowedOrigins []string, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)

	r.Route("/v0", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Get("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireBearer(verifier, log))

			r.Post("/save_state", h.SaveState)
			r.Post("/validate_token", h.ValidateToken)
			r.Get("/resume", h.Resume)
			r.Get("/users", h.ListUsers)

			r.Get("/workspaces", h.ListWorkspaces)
			r.Post("/workspaces", h.CreateWorkspace)
			r.Post("/user_workspaces", h.AddMember)
			r.Get("/workspace_members", h.ListMembers)

			r.Get("/channels", h.ListChannels)
			r.Post("/channels", h.CreateChannel)
			r.Get("/channels/{channelId}", h.GetChannel)

			r.Get("/messages", h.ListMessages)
			r.Post("/messages", h.PostMessage)
			r.Get("/mentions", h.Mentions)
			r.Get("/search", h.Search)

			r.Get("/direct_messages", h.DirectMessages)
			r.Post("/direct_messages", h.SendDirectMessage)
			r.Get("/direct_messages_list", h.Conversations)
		})
	})
	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("Request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"latency_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
