// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedules

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/storage"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/internal/types"
)

// reserveAttempts bounds the compare-and-set retry loop. Exhausting the
// attempts under sustained contention surfaces as ErrConflict.
const reserveAttempts = 3

var (
	ErrConflict          = errors.New("seat reservation conflict, try again")
	ErrInsufficientSeats = errors.New("not enough available seats")
	ErrInvalidSeats      = errors.New("seats must be a positive number")
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateSchedule(ctx context.Context, tenantID string, schedule *types.Schedule) (*types.Schedule, error) {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.CreateSchedule")
	defer span.End()

	schedule.TenantID = tenantID
	schedule.ScheduleID = uuid.NewString()
	schedule.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.storage.CreateSchedule(ctx, schedule); err != nil {
		s.logger.Errorf("failed to create schedule: %v", err)
		return nil, err
	}
	return schedule, nil
}

func (s *Service) GetSchedule(ctx context.Context, tenantID, scheduleID string) (*types.Schedule, error) {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.GetSchedule")
	defer span.End()

	return s.storage.GetSchedule(ctx, tenantID, scheduleID)
}

func (s *Service) ListSchedules(ctx context.Context, tenantID, movieID string) ([]types.Schedule, error) {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.ListSchedules")
	defer span.End()

	return s.storage.ListSchedules(ctx, tenantID, movieID)
}

// ReserveSeats atomically decrements the available seat count. Each attempt
// reads the current count and issues a conditional update that only applies
// if the count is unchanged, so concurrent reservations can never oversell
// or drive the count negative.
func (s *Service) ReserveSeats(ctx context.Context, tenantID, scheduleID string, seats int) (*types.Schedule, error) {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.ReserveSeats")
	defer span.End()

	if seats <= 0 {
		return nil, ErrInvalidSeats
	}

	for attempt := 0; attempt < reserveAttempts; attempt++ {
		schedule, err := s.storage.GetSchedule(ctx, tenantID, scheduleID)
		if err != nil {
			return nil, err
		}

		if schedule.AvailableSeats < seats {
			return nil, ErrInsufficientSeats
		}

		remaining := schedule.AvailableSeats - seats
		err = s.storage.UpdateScheduleSeats(ctx, tenantID, scheduleID, schedule.AvailableSeats, remaining)
		if errors.Is(err, storage.ErrVersionMismatch) {
			s.logger.Debugf("seat count moved under us on schedule %s, retrying", scheduleID)
			continue
		}
		if err != nil {
			return nil, err
		}

		schedule.AvailableSeats = remaining
		return schedule, nil
	}

	return nil, ErrConflict
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
