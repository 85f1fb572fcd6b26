package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

type entry struct {
	reg    Registrar
	mws    []Middleware
	stream bool
}

var registry []entry

// Register a registrar with optional per-route middlewares.
func Register(reg Registrar, mws ...Middleware) {
	registry = append(registry, entry{reg: reg, mws: mws})
}

// RegisterStream is Register for long-lived routes (websockets) that must
// not get the request timeout.
func RegisterStream(reg Registrar, mws ...Middleware) {
	registry = append(registry, entry{reg: reg, mws: mws, stream: true})
}

// Called once from server.New()
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, e := range registry {
		sub := r
		if !e.stream && d.RequestTimeout > 0 {
			sub = sub.With(middleware.Timeout(d.RequestTimeout))
		}
		if len(e.mws) > 0 {
			sub = sub.With(e.mws...) // apply per-route middlewares
		}
		e.reg(sub, d)
	}
}

// guarded is the access policy shared by the API and launch routes.
func guarded(d deps.Deps) []Middleware {
	return []Middleware{
		mwAllowOnlyCIDRS(d),
		mwEnforceHost(d),
	}
}

// limited adds the shared mutation rate limiter when configured.
func limited(d deps.Deps) []Middleware {
	mws := guarded(d)
	if d.MutationLimit != nil {
		mws = append(mws, d.MutationLimit)
	}
	return mws
}
