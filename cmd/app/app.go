// Package main is the entry point for the order service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"orderservice/internal/config"
	"orderservice/internal/formatter"
	"orderservice/internal/metrics"
	"orderservice/internal/service"
	"orderservice/internal/validator"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	formatters *formatter.Registry
	metrics    *metrics.Metrics
	httpServer *http.Server
}

// NewApp wires all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) *App {
	app := &App{
		cfg:        cfg,
		logger:     logger,
		formatters: formatter.NewDefaultRegistry(),
		metrics:    metrics.New(),
	}
	app.logger.Infow("Currency formatters registered", "currencies", app.formatters.Codes())

	orderService := service.NewOrderService(app.formatters, app.logger)
	app.initHTTP(validator.NewDefaultRecordValidator(), orderService)
	return app
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "addr", app.httpServer.Addr)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or server failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown stops accepting new requests and drains in-flight ones.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		return fmt.Errorf("http shutdown: %w", err)
	}

	app.logger.Infow("Shutdown complete")
	return nil
}
