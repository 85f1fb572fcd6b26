package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
)

// Live streams registry change notifications over a websocket.
func Live(d deps.Deps) http.HandlerFunc {
	return d.Hub.ServeWS
}
