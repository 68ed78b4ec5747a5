// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package movies

//go:generate mockgen -build_flags=--mod=mod -package movies -destination ./mock_movies.go -source=./interfaces.go

import (
	"context"

	"github.com/canonical/ticketing-service/internal/types"
)

type ServiceInterface interface {
	CreateMovie(ctx context.Context, tenantID string, movie *types.Movie) (*types.Movie, error)
	GetMovie(ctx context.Context, tenantID, movieID string) (*types.Movie, error)
	ListMovies(ctx context.Context, tenantID string) ([]types.Movie, error)
}

type StorageInterface interface {
	CreateMovie(ctx context.Context, movie *types.Movie) error
	GetMovie(ctx context.Context, tenantID, movieID string) (*types.Movie, error)
	ListMovies(ctx context.Context, tenantID string) ([]types.Movie, error)
}
