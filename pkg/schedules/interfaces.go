// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedules

//go:generate mockgen -build_flags=--mod=mod -package schedules -destination ./mock_schedules.go -source=./interfaces.go

import (
	"context"

	"github.com/canonical/ticketing-service/internal/types"
)

type ServiceInterface interface {
	CreateSchedule(ctx context.Context, tenantID string, schedule *types.Schedule) (*types.Schedule, error)
	GetSchedule(ctx context.Context, tenantID, scheduleID string) (*types.Schedule, error)
	ListSchedules(ctx context.Context, tenantID, movieID string) ([]types.Schedule, error)
	ReserveSeats(ctx context.Context, tenantID, scheduleID string, seats int) (*types.Schedule, error)
}

type StorageInterface interface {
	CreateSchedule(ctx context.Context, schedule *types.Schedule) error
	GetSchedule(ctx context.Context, tenantID, scheduleID string) (*types.Schedule, error)
	ListSchedules(ctx context.Context, tenantID, movieID string) ([]types.Schedule, error)
	UpdateScheduleSeats(ctx context.Context, tenantID, scheduleID string, expected, available int) error
}
