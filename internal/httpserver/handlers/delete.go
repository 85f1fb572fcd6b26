package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/launchpad/internal/domain"
	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchpad/internal/registry"
)

type deleteRequest struct {
	URL string `json:"url"`
}

type confirmRequest struct {
	Token string `json:"token"`
}

type deletedResponse struct {
	Deleted domain.Site `json:"deleted"`
}

type cancelledResponse struct {
	Cancelled bool `json:"cancelled"`
}

// RequestDeletion stages a custom site for deletion and returns the
// confirmation token. Built-in sites are hidden, not deleted.
func RequestDeletion(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		site, ok := d.Registry.CustomSite(req.URL)
		if !ok {
			writeError(w, d.Logger, &registry.NotFoundError{Resource: "custom site", ID: req.URL})
			return
		}

		token := d.Deletion.Request(site)
		writeJSON(w, http.StatusOK, registry.Pending{Token: token, Site: site})
	}
}

func ConfirmDeletion(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req confirmRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		site, err := d.Deletion.Confirm(r.Context(), req.Token)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, deletedResponse{Deleted: site})
	}
}

func CancelDeletion(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cancelledResponse{Cancelled: d.Deletion.Cancel()})
	}
}
