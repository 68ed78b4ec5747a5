// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package reservations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/internal/types"
)

type Service struct {
	storage      StorageInterface
	seatReserver SeatReserverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateReservation claims seats on the schedule and only then writes the
// reservation record, so a stored reservation always has seats backing it.
// Function date and movie title come from the caller when supplied and are
// otherwise backfilled from the schedule, resolved before the seat
// decrement so a gap in the schedule record never burns seats.
func (s *Service) CreateReservation(ctx context.Context, tenantID, email string, params CreateReservationParams) (*types.Reservation, error) {
	ctx, span := s.tracer.Start(ctx, "reservations.Service.CreateReservation")
	defer span.End()

	functionDate := params.FunctionDate
	movieTitle := params.MovieTitle
	if functionDate == "" || movieTitle == "" {
		schedule, err := s.seatReserver.GetSchedule(ctx, tenantID, params.ScheduleID)
		if err != nil {
			return nil, err
		}
		if functionDate == "" {
			functionDate = schedule.FunctionDate
		}
		if movieTitle == "" {
			movieTitle = schedule.MovieTitle
		}

		// The schedule record is the source for the denormalized fields;
		// a gap there is a data fault on our side, not a caller error.
		if functionDate == "" || movieTitle == "" {
			return nil, fmt.Errorf("schedule %s is missing movie title or function date", params.ScheduleID)
		}
	}

	if _, err := s.seatReserver.ReserveSeats(ctx, tenantID, params.ScheduleID, params.Seats); err != nil {
		return nil, err
	}

	reservation := &types.Reservation{
		TenantID:      tenantID,
		ReservationID: uuid.NewString(),
		Email:         email,
		Seats:         params.Seats,
		ScheduleID:    params.ScheduleID,
		FunctionDate:  functionDate,
		MovieTitle:    movieTitle,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.storage.CreateReservation(ctx, reservation); err != nil {
		s.logger.Errorf("failed to store reservation after seat decrement: %v", err)
		return nil, err
	}
	return reservation, nil
}

func (s *Service) ListReservations(ctx context.Context, tenantID, email string) ([]types.Reservation, error) {
	ctx, span := s.tracer.Start(ctx, "reservations.Service.ListReservations")
	defer span.End()

	return s.storage.ListReservationsByEmail(ctx, tenantID, email)
}

func NewService(storage StorageInterface, seatReserver SeatReserverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.seatReserver = seatReserver
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
