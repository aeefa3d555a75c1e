// Package server owns the process lifecycle: configuration, storage and
// cache connections, migrations, and the HTTP listen/serve loop with
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/vyapar/app/listeners"
	"github.com/shashiranjanraj/vyapar/app/models"
	"github.com/shashiranjanraj/vyapar/config"
	"github.com/shashiranjanraj/vyapar/internal/kernel"
	"github.com/shashiranjanraj/vyapar/pkg/cache"
	"github.com/shashiranjanraj/vyapar/pkg/database"
	"github.com/shashiranjanraj/vyapar/pkg/logger"
)

// Start boots every collaborator and serves HTTP until SIGINT/SIGTERM.
// A storage connection failure aborts startup; a degraded no-database
// server is worse than no server.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := database.DB.AutoMigrate(&models.User{}, &models.Vendor{}, &models.Product{}); err != nil {
		return fmt.Errorf("server: auto-migrate: %w", err)
	}

	// The cache is an optimisation; run without it rather than refusing
	// to start.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, serving without it", "error", err)
	}

	listeners.RegisterAudit()

	if uri := config.MongoLogURI(); uri != "" {
		sink, err := logger.EnableMongoSink(uri, config.MongoLogDatabase(), config.MongoLogCollection())
		if err != nil {
			logger.Warn("audit log sink unavailable", "error", err)
		} else {
			defer sink.Close()
		}
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           kernel.Build(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}
