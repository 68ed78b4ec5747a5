// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package movies

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateMovie(ctx context.Context, tenantID string, movie *types.Movie) (*types.Movie, error) {
	ctx, span := s.tracer.Start(ctx, "movies.Service.CreateMovie")
	defer span.End()

	movie.TenantID = tenantID
	movie.MovieID = uuid.NewString()
	movie.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.storage.CreateMovie(ctx, movie); err != nil {
		s.logger.Errorf("failed to create movie: %v", err)
		return nil, err
	}
	return movie, nil
}

func (s *Service) GetMovie(ctx context.Context, tenantID, movieID string) (*types.Movie, error) {
	ctx, span := s.tracer.Start(ctx, "movies.Service.GetMovie")
	defer span.End()

	return s.storage.GetMovie(ctx, tenantID, movieID)
}

func (s *Service) ListMovies(ctx context.Context, tenantID string) ([]types.Movie, error) {
	ctx, span := s.tracer.Start(ctx, "movies.Service.ListMovies")
	defer span.End()

	return s.storage.ListMovies(ctx, tenantID)
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
