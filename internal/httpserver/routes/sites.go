package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchpad/internal/httpserver/handlers"
)

func init() { Register(registerSites) }

func registerSites(r chi.Router, d deps.Deps) {
	r.Route("/api/sites", func(r chi.Router) {
		r.Use(limited(d)...)
		r.Post("/", handlers.AddSite(d))
		r.Put("/", handlers.UpdateSite(d))
		r.Post("/delete", handlers.RequestDeletion(d))
		r.Post("/delete/confirm", handlers.ConfirmDeletion(d))
		r.Post("/delete/cancel", handlers.CancelDeletion(d))
	})
}
