// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package reservations

//go:generate mockgen -build_flags=--mod=mod -package reservations -destination ./mock_reservations.go -source=./interfaces.go

import (
	"context"

	"github.com/canonical/ticketing-service/internal/types"
)

// CreateReservationParams carries the caller supplied reservation fields.
// FunctionDate and MovieTitle are optional and backfilled from the schedule
// when absent.
type CreateReservationParams struct {
	ScheduleID   string
	Seats        int
	FunctionDate string
	MovieTitle   string
}

type ServiceInterface interface {
	CreateReservation(ctx context.Context, tenantID, email string, params CreateReservationParams) (*types.Reservation, error)
	ListReservations(ctx context.Context, tenantID, email string) ([]types.Reservation, error)
}

type StorageInterface interface {
	CreateReservation(ctx context.Context, reservation *types.Reservation) error
	ListReservationsByEmail(ctx context.Context, tenantID, email string) ([]types.Reservation, error)
}

// SeatReserverInterface reads schedules and decrements their seat
// inventory before a reservation record is written.
type SeatReserverInterface interface {
	GetSchedule(ctx context.Context, tenantID, scheduleID string) (*types.Schedule, error)
	ReserveSeats(ctx context.Context, tenantID, scheduleID string, seats int) (*types.Schedule, error)
}
