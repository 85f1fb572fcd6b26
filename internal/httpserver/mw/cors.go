package mw

import (
	"net/http"

	"github.com/MrSnakeDoc/launchpad/internal/utils"
	"github.com/go-chi/cors"
)

// CORS answers browser cross-origin checks for the allowed origins.
// If allowedOrigins is empty, it acts as a passthrough (same-origin only).
// Origins are matched like the live feed's origin check.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return utils.OriginAllowed(allowedOrigins, origin)
		},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         600,
	})
}
