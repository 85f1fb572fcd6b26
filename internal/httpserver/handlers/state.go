package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/launchpad/internal/domain"
	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchpad/internal/registry"
)

type stateResponse struct {
	BuiltIn         []domain.Site      `json:"builtIn"`
	Custom          []domain.Site      `json:"custom"`
	HiddenCount     int                `json:"hiddenCount"`
	Drag            registry.DragState `json:"drag"`
	PendingDeletion *registry.Pending  `json:"pendingDeletion"`
	Palette         []string           `json:"palette"`
}

// State returns everything a launcher screen renders.
func State(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, snapshot(d))
	}
}

func snapshot(d deps.Deps) stateResponse {
	resp := stateResponse{
		BuiltIn:     d.Registry.VisibleBuiltInSites(),
		Custom:      d.Registry.CustomSites(),
		HiddenCount: d.Registry.HiddenCount(),
		Drag:        d.Drag.State(),
		Palette:     domain.Palette,
	}
	if p, ok := d.Deletion.Pending(); ok {
		resp.PendingDeletion = &p
	}
	return resp
}
