// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

//go:generate mockgen -build_flags=--mod=mod -package storage -destination ./mock_db.go -source=../db/interfaces.go

import (
	"context"

	"github.com/canonical/ticketing-service/internal/types"
)

type StorageInterface interface {
	CreateMovie(ctx context.Context, movie *types.Movie) error
	GetMovie(ctx context.Context, tenantID, movieID string) (*types.Movie, error)
	ListMovies(ctx context.Context, tenantID string) ([]types.Movie, error)

	CreateSchedule(ctx context.Context, schedule *types.Schedule) error
	GetSchedule(ctx context.Context, tenantID, scheduleID string) (*types.Schedule, error)
	// ListSchedules returns every schedule in the tenant partition, or only
	// those for one movie when movieID is non empty.
	ListSchedules(ctx context.Context, tenantID, movieID string) ([]types.Schedule, error)
	// UpdateScheduleSeats sets available_seats to available only if its
	// current value still equals expected, returning ErrVersionMismatch
	// otherwise.
	UpdateScheduleSeats(ctx context.Context, tenantID, scheduleID string, expected, available int) error

	CreateReservation(ctx context.Context, reservation *types.Reservation) error
	ListReservationsByEmail(ctx context.Context, tenantID, email string) ([]types.Reservation, error)

	CreateUser(ctx context.Context, user *types.User) error
	GetUser(ctx context.Context, tenantID, email string) (*types.User, error)

	CreateProduct(ctx context.Context, product *types.Product) error
	ListProducts(ctx context.Context, tenantID string) ([]types.Product, error)
	DeleteProduct(ctx context.Context, tenantID, productID string) error

	CreateOrder(ctx context.Context, order *types.Order) error
	ListOrdersByEmail(ctx context.Context, tenantID, email string) ([]types.Order, error)
}
