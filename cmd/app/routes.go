package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"orderservice/internal/api"
	"orderservice/internal/api/middleware"
	"orderservice/internal/service"
)

func (app *App) initHTTP(v service.Validator, orderService service.OrderServiceInterface) {
	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           app.router(v, orderService),
		ReadHeaderTimeout: app.cfg.Server.ReadHeaderTimeout(),
		WriteTimeout:      app.cfg.Server.WriteTimeout(),
		IdleTimeout:       app.cfg.Server.IdleTimeout(),
	}
}

func (app *App) router(v service.Validator, orderService service.OrderServiceInterface) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(middleware.MetricsMiddleware(app.metrics))
	r.Use(chimiddleware.Recoverer)

	r.Post("/orders", api.HandleCreateOrder(api.OrderHandlerConfig{
		Validator:    v,
		Service:      orderService,
		Metrics:      app.metrics,
		Logger:       app.logger,
		MaxBodyBytes: app.cfg.Server.MaxBodyBytes,
	}))
	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(app.formatters))

	if app.cfg.Server.ServeMetrics {
		r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	}

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler(app.cfg.Server.PublicHost))
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	return r
}
