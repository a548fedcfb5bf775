// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/changomango/portfolio/internal/analytics"
	"github.com/changomango/portfolio/internal/content"
	"github.com/changomango/portfolio/internal/web"
)

const shutdownTimeout = 10 * time.Second

// NewLogger builds the production JSON logger at the given level.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.App.LogLevel)
	return zc.Build()
}

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := app.logger
	if logger == nil {
		var err error
		if logger, err = NewLogger(cfg); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	gin.SetMode(cfg.App.Mode)

	logger.Info("Configuration loaded",
		zap.String("http_address", cfg.App.HTTP.Address()),
		zap.String("content_path", cfg.Content.Path),
		zap.Bool("analytics", cfg.Analytics.Enabled),
		zap.Bool("admin", cfg.Admin.Enabled()),
		zap.String("log_level", cfg.App.LogLevel.String()))

	// Site content.
	site := content.Default()
	if cfg.Content.Path != "" {
		loaded, err := content.LoadFile(cfg.Content.Path)
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}
		site = loaded
	} else if err := site.Validate(); err != nil {
		return fmt.Errorf("built-in content: %w", err)
	}
	store := content.NewStore(site)

	deps := web.Deps{
		Content:   store,
		Logger:    logger,
		ImagesDir: cfg.Content.ImagesDir,
	}

	// Analytics.
	var tracker *analytics.Tracker
	if cfg.Analytics.Enabled {
		db, err := analytics.Open(cfg.Analytics.DBPath)
		if err != nil {
			return fmt.Errorf("init analytics: %w", err)
		}
		defer db.Close()

		tracker, err = analytics.NewTracker(db, logger, cfg.Analytics.QueueSize, cfg.Analytics.Retention())
		if err != nil {
			return fmt.Errorf("init tracker: %w", err)
		}
		deps.Tracker = tracker

		if cfg.Admin.Enabled() {
			deps.Admin, err = analytics.NewAdmin(db, tracker, logger,
				cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.SecureCookies)
			if err != nil {
				return fmt.Errorf("init admin: %w", err)
			}
		}
	}

	router, err := web.NewRouter(deps)
	if err != nil {
		return fmt.Errorf("init router: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Reload content when the file changes.
	if cfg.Content.Path != "" && cfg.Content.Watch {
		g.Go(func() error {
			return content.Watch(gCtx, cfg.Content.Path, store, logger)
		})
	}

	// Drain the analytics queue.
	if tracker != nil {
		g.Go(func() error {
			return tracker.Run(gCtx)
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		var reason error
		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
			reason = errShutdown
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", zap.Error(err))
		}

		// Returning an error cancels gCtx so the workers stop too.
		return reason
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Error("Application error", zap.Error(err))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

var errShutdown = errors.New("shutdown requested")
