package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/scoremate/scoremate/internal/api/handler"
	"github.com/scoremate/scoremate/internal/api/middleware"
	"github.com/scoremate/scoremate/internal/gameconfig"
	"github.com/scoremate/scoremate/internal/session"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Store    session.Store
	Registry gameconfig.Registry
	Version  string
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.Store, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	configHandler := handler.NewConfigHandler(deps.Registry)
	r.Get("/configs", configHandler.List)

	sessionHandler := handler.NewSessionHandler(deps.Store, deps.Registry)
	teamHandler := handler.NewTeamHandler(deps.Store)
	historyHandler := handler.NewHistoryHandler(deps.Store)
	gameHandler := handler.NewGameHandler(deps.Store, deps.Registry)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", sessionHandler.Create)
		r.Get("/", sessionHandler.List)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", sessionHandler.Get)
			r.Delete("/", sessionHandler.Delete)

			r.Post("/teams", teamHandler.Add)
			r.Delete("/teams/{index}", teamHandler.Remove)
			r.Post("/teams/{index}/score", teamHandler.AddScore)

			r.Get("/history", historyHandler.List)
			r.Patch("/history/{index}", historyHandler.EditScore)
			r.Patch("/history/{index}/phase", historyHandler.EditPhase)

			r.Post("/restart", gameHandler.Restart)
			r.Post("/game", gameHandler.NewGame)
			r.Get("/export", gameHandler.Export)
			r.Post("/import", gameHandler.Import)
		})
	})

	return r
}
