package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchpad/internal/httpserver/handlers"
)

func init() { Register(registerLaunch) }

func registerLaunch(r chi.Router, d deps.Deps) {
	r.With(guarded(d)...).Get("/launch", handlers.Launch(d))
}
