package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchpad/internal/registry"
)

type hideRequest struct {
	URL string `json:"url"`
}

type hideResponse struct {
	Hidden      bool `json:"hidden"`
	HiddenCount int  `json:"hiddenCount"`
}

type restoreResponse struct {
	Restored int `json:"restored"`
}

// HideBuiltIn hides a built-in site. Hiding twice is not an error.
func HideBuiltIn(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req hideRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if !d.Registry.IsBuiltIn(req.URL) {
			writeError(w, d.Logger, &registry.NotFoundError{Resource: "built-in site", ID: req.URL})
			return
		}

		hidden := d.Registry.HideBuiltIn(r.Context(), req.URL)
		writeJSON(w, http.StatusOK, hideResponse{Hidden: hidden, HiddenCount: d.Registry.HiddenCount()})
	}
}

func RestoreHidden(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, restoreResponse{Restored: d.Registry.RestoreAllHidden(r.Context())})
	}
}
