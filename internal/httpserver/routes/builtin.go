package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchpad/internal/httpserver/handlers"
)

func init() { Register(registerBuiltIn) }

func registerBuiltIn(r chi.Router, d deps.Deps) {
	r = r.With(limited(d)...)
	r.Post("/api/builtin/hide", handlers.HideBuiltIn(d))
	r.Post("/api/builtin/restore", handlers.RestoreHidden(d))
}
