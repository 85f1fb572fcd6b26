package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/launchpad/internal/catalog"
	"github.com/MrSnakeDoc/launchpad/internal/config"
	"github.com/MrSnakeDoc/launchpad/internal/httpserver"
	"github.com/MrSnakeDoc/launchpad/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchpad/internal/httpserver/live"
	"github.com/MrSnakeDoc/launchpad/internal/logger"
	"github.com/MrSnakeDoc/launchpad/internal/navigation"
	"github.com/MrSnakeDoc/launchpad/internal/registry"
	"github.com/MrSnakeDoc/launchpad/internal/store"
	"github.com/MrSnakeDoc/launchpad/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	store       store.BlobStore
	hub         *live.Hub
	unsubscribe func()
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		loggerClient.Errorf("Failed to load catalog: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("catalog loaded",
		logger.Int("sites", cat.Len()),
		logger.String("file", catalogSource(cfg.CatalogFile)))

	redirector, err := navigation.NewRedirector(cfg.RedirectEndpoint, cfg.RedirectParam)
	if err != nil {
		loggerClient.Errorf("Invalid redirect endpoint: %v", err)
		os.Exit(1)
	}

	// Open the store early - fail fast if unavailable
	st, err := openStore(context.Background(), cfg, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to open %s store: %v", cfg.StoreBackend, err)
		os.Exit(1)
	}
	loggerClient.Info("store initialized", logger.String("backend", cfg.StoreBackend))

	reg := registry.New(context.Background(), cat, st, loggerClient,
		registry.WithSaveTimeout(cfg.SaveTimeout))

	hub := live.NewHub(cfg.CORSOrigins, loggerClient)
	unsubscribe := reg.Subscribe(hub.OnChange)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Registry:     reg,
		Drag:         registry.NewDragController(reg),
		Deletion:     registry.NewPendingDeletion(reg),
		Redirector:   redirector,
		Store:        st,
		Hub:          hub,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		store:       st,
		hub:         hub,
		unsubscribe: unsubscribe,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Launchpad v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.closeStore()
		return err
	}

	a.unsubscribe()
	a.hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.closeStore()
	a.logger.Info("✅ Launchpad stopped cleanly")
	_ = a.logger.Sync()
	return nil
}

func (a *App) closeStore() {
	if err := a.store.Close(); err != nil {
		a.logger.Warnf("failed to close %s store: %v", a.cfg.StoreBackend, err)
		return
	}
	a.logger.Info("✅ Store closed cleanly", logger.String("backend", a.cfg.StoreBackend))
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
