package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchpad/internal/httpserver/handlers"
)

func init() { Register(registerDrag) }

// Only the drop persists, so only the drop is rate limited.
func registerDrag(r chi.Router, d deps.Deps) {
	g := r.With(guarded(d)...)
	g.Post("/api/edit-mode", handlers.EditMode(d))
	g.Post("/api/drag/start", handlers.DragStart(d))
	g.Post("/api/drag/hover", handlers.DragHover(d))
	g.Post("/api/drag/leave", handlers.DragLeave(d))
	g.Post("/api/drag/cancel", handlers.DragCancel(d))

	r.With(limited(d)...).Post("/api/drag/drop", handlers.DragDrop(d))
}
