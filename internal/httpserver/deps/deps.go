package deps

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/launchpad/internal/httpserver/live"
	"github.com/MrSnakeDoc/launchpad/internal/logger"
	"github.com/MrSnakeDoc/launchpad/internal/navigation"
	"github.com/MrSnakeDoc/launchpad/internal/registry"
	"github.com/MrSnakeDoc/launchpad/internal/store"
)

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time // for testing, defaults to time.Now
	RequestTimeout time.Duration    // per-request timeout, streaming routes excluded
	AllowedHosts   []string         // Host headers allowed to access the server
	AllowedCIDRS   []string         // IPs allowed to access the API and probes
	TrustProxy     bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)

	Registry   *registry.Registry
	Drag       *registry.DragController
	Deletion   *registry.PendingDeletion
	Redirector *navigation.Redirector
	Store      store.BlobStore // pinged by /readyz
	Hub        *live.Hub

	// MutationLimit is the shared rate limiter for state-changing routes.
	// Nil disables limiting.
	MutationLimit func(http.Handler) http.Handler
}
