package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchpad/internal/logger"
	"github.com/MrSnakeDoc/launchpad/internal/registry"
)

type editModeRequest struct {
	Enabled *bool `json:"enabled"` // nil = toggle
}

type indexRequest struct {
	Index *int `json:"index"`
}

type dropResponse struct {
	registry.DragState
	Reordered bool `json:"reordered"`
}

// EditMode sets edit mode, or toggles it when "enabled" is omitted.
func EditMode(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req editModeRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if req.Enabled == nil {
			d.Drag.ToggleEditMode()
		} else {
			d.Drag.SetEditMode(*req.Enabled)
		}

		st := d.Drag.State()
		if !st.EditMode && st.Active() {
			d.Logger.Debug("edit mode off with a drag in progress", logger.Int("dragged", *st.Dragged))
		}
		writeJSON(w, http.StatusOK, st)
	}
}

// DragStart and DragHover are intents: ignored input still answers 200
// with the unchanged state.
func DragStart(d deps.Deps) http.HandlerFunc {
	return indexIntent(d, d.Drag.Start)
}

func DragHover(d deps.Deps) http.HandlerFunc {
	return indexIntent(d, d.Drag.Hover)
}

func indexIntent(d deps.Deps, apply func(int) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req indexRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if req.Index == nil {
			writeError(w, d.Logger, &registry.ValidationError{Field: "index", Message: "is required"})
			return
		}

		apply(*req.Index)
		writeJSON(w, http.StatusOK, d.Drag.State())
	}
}

func DragLeave(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Drag.Leave()
		writeJSON(w, http.StatusOK, d.Drag.State())
	}
}

func DragDrop(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reordered := d.Drag.Drop(r.Context())
		writeJSON(w, http.StatusOK, dropResponse{DragState: d.Drag.State(), Reordered: reordered})
	}
}

func DragCancel(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Drag.Cancel()
		writeJSON(w, http.StatusOK, d.Drag.State())
	}
}
