package handlers

import (
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchpad/internal/logger"
	"github.com/MrSnakeDoc/launchpad/internal/registry"
)

// Launch redirects the browser to ?url= through the configured redirect
// endpoint. Any typed input is accepted, saved or not.
func Launch(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("url")
		if strings.TrimSpace(raw) == "" {
			writeError(w, d.Logger, &registry.ValidationError{Field: "url", Message: "cannot be empty"})
			return
		}

		target := d.Redirector.URLFor(raw)
		d.Logger.Debug("launch", logger.String("url", raw), logger.String("redirect", target))

		w.Header().Set("Cache-Control", "no-store")
		http.Redirect(w, r, target, http.StatusFound)
	}
}
