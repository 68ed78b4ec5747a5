// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	cors "github.com/go-chi/cors"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/storage"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/pkg/authentication"
	"github.com/canonical/ticketing-service/pkg/metrics"
	"github.com/canonical/ticketing-service/pkg/movies"
	"github.com/canonical/ticketing-service/pkg/orders"
	"github.com/canonical/ticketing-service/pkg/products"
	"github.com/canonical/ticketing-service/pkg/reservations"
	"github.com/canonical/ticketing-service/pkg/schedules"
	"github.com/canonical/ticketing-service/pkg/status"
	"github.com/canonical/ticketing-service/pkg/users"
)

func NewRouter(
	s storage.StorageInterface,
	tokens *authentication.TokenService,
	bcryptCost int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	scheduleService := schedules.NewService(s, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Registration and login are the only endpoints reachable without a
	// bearer token.
	users.NewAPI(
		users.NewService(s, tokens, bcryptCost, tracer, monitor, logger),
		logger,
	).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authentication.NewMiddleware(tokens, tracer, monitor, logger).Authenticate())

		movies.NewAPI(movies.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
		schedules.NewAPI(scheduleService, logger).RegisterEndpoints(r)
		reservations.NewAPI(
			reservations.NewService(s, scheduleService, tracer, monitor, logger),
			logger,
		).RegisterEndpoints(r)
		products.NewAPI(products.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
		orders.NewAPI(orders.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		},
	)
}
