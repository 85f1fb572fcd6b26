package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
)

type addSiteRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type updateSiteRequest struct {
	OriginalURL string `json:"originalUrl"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Color       string `json:"color"` // empty = automatic gradient
}

// AddSite saves a new custom site: 201, 400 on a blank url, 409 when the
// url is already saved.
func AddSite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addSiteRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		site, err := d.Registry.AddCustomSite(r.Context(), req.Name, req.URL)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, site)
	}
}

// UpdateSite edits a custom site, or renames a built-in one.
func UpdateSite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateSiteRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		site, err := d.Registry.UpdateSite(r.Context(), req.OriginalURL, req.Name, req.URL, req.Color)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, site)
	}
}
