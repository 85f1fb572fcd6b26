package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchpad/internal/httpserver/handlers"
)

func init() { RegisterStream(registerLive) }

func registerLive(r chi.Router, d deps.Deps) {
	r.With(guarded(d)...).Get("/api/live", handlers.Live(d))
}
