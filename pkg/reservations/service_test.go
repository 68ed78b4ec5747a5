// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package reservations

import (
	"context"
	"errors"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/internal/types"
	"github.com/canonical/ticketing-service/pkg/schedules"
)

func setupService(t *testing.T) (*MockStorageInterface, *MockSeatReserverInterface, *Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := NewMockStorageInterface(ctrl)
	reserver := NewMockSeatReserverInterface(ctrl)

	return store, reserver, NewService(store, reserver, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestCreateReservationBackfillsFromSchedule(t *testing.T) {
	store, reserver, svc := setupService(t)

	reserver.EXPECT().GetSchedule(gomock.Any(), "cinema-one", "schedule-1").Return(
		&types.Schedule{
			TenantID:       "cinema-one",
			ScheduleID:     "schedule-1",
			MovieTitle:     "Dune",
			FunctionDate:   "2026-09-01T20:00:00Z",
			AvailableSeats: 10,
		}, nil,
	)
	reserver.EXPECT().ReserveSeats(gomock.Any(), "cinema-one", "schedule-1", 2).Return(
		&types.Schedule{
			TenantID:       "cinema-one",
			ScheduleID:     "schedule-1",
			MovieTitle:     "Dune",
			FunctionDate:   "2026-09-01T20:00:00Z",
			AvailableSeats: 8,
		}, nil,
	)
	store.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, r *types.Reservation) error {
			if r.TenantID != "cinema-one" || r.Email != "a@b.com" || r.Seats != 2 {
				t.Errorf("unexpected reservation %+v", r)
			}
			if r.MovieTitle != "Dune" || r.FunctionDate != "2026-09-01T20:00:00Z" {
				t.Errorf("expected schedule details copied onto reservation, got %+v", r)
			}
			if r.ReservationID == "" || r.CreatedAt == "" {
				t.Errorf("expected generated id and timestamp, got %+v", r)
			}
			return nil
		},
	)

	reservation, err := svc.CreateReservation(context.Background(), "cinema-one", "a@b.com", CreateReservationParams{ScheduleID: "schedule-1", Seats: 2})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reservation.ScheduleID != "schedule-1" {
		t.Errorf("expected schedule-1, got %s", reservation.ScheduleID)
	}
}

func TestCreateReservationWithCallerDetails(t *testing.T) {
	store, reserver, svc := setupService(t)

	// Both fields supplied, the schedule is not read back.
	reserver.EXPECT().GetSchedule(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	reserver.EXPECT().ReserveSeats(gomock.Any(), "cinema-one", "schedule-1", 3).Return(
		&types.Schedule{TenantID: "cinema-one", ScheduleID: "schedule-1", AvailableSeats: 7}, nil,
	)
	store.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, r *types.Reservation) error {
			if r.MovieTitle != "Alien" || r.FunctionDate != "2026-10-02T18:00:00Z" {
				t.Errorf("expected caller supplied details kept, got %+v", r)
			}
			return nil
		},
	)

	_, err := svc.CreateReservation(context.Background(), "cinema-one", "a@b.com", CreateReservationParams{
		ScheduleID:   "schedule-1",
		Seats:        3,
		FunctionDate: "2026-10-02T18:00:00Z",
		MovieTitle:   "Alien",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestCreateReservationSeatsUnavailable(t *testing.T) {
	store, reserver, svc := setupService(t)

	reserver.EXPECT().GetSchedule(gomock.Any(), "cinema-one", "schedule-1").Return(
		&types.Schedule{TenantID: "cinema-one", ScheduleID: "schedule-1", MovieTitle: "Dune", FunctionDate: "2026-09-01T20:00:00Z", AvailableSeats: 2}, nil,
	)
	reserver.EXPECT().ReserveSeats(gomock.Any(), "cinema-one", "schedule-1", 5).Return(nil, schedules.ErrInsufficientSeats)
	// No write must happen when the seat decrement fails.
	store.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateReservation(context.Background(), "cinema-one", "a@b.com", CreateReservationParams{ScheduleID: "schedule-1", Seats: 5})
	if !errors.Is(err, schedules.ErrInsufficientSeats) {
		t.Errorf("expected ErrInsufficientSeats, got %v", err)
	}
}

func TestCreateReservationConflict(t *testing.T) {
	store, reserver, svc := setupService(t)

	reserver.EXPECT().GetSchedule(gomock.Any(), "cinema-one", "schedule-1").Return(
		&types.Schedule{TenantID: "cinema-one", ScheduleID: "schedule-1", MovieTitle: "Dune", FunctionDate: "2026-09-01T20:00:00Z", AvailableSeats: 4}, nil,
	)
	reserver.EXPECT().ReserveSeats(gomock.Any(), "cinema-one", "schedule-1", 1).Return(nil, schedules.ErrConflict)
	store.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateReservation(context.Background(), "cinema-one", "a@b.com", CreateReservationParams{ScheduleID: "schedule-1", Seats: 1})
	if !errors.Is(err, schedules.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestCreateReservationMissingScheduleDetails(t *testing.T) {
	store, reserver, svc := setupService(t)

	reserver.EXPECT().GetSchedule(gomock.Any(), "cinema-one", "schedule-1").Return(
		&types.Schedule{TenantID: "cinema-one", ScheduleID: "schedule-1", AvailableSeats: 9}, nil,
	)
	// The failure is detected before any seats are claimed.
	reserver.EXPECT().ReserveSeats(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	store.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Times(0)

	if _, err := svc.CreateReservation(context.Background(), "cinema-one", "a@b.com", CreateReservationParams{ScheduleID: "schedule-1", Seats: 1}); err == nil {
		t.Error("expected an error for a schedule without title and date")
	}
}

func TestListReservations(t *testing.T) {
	store, _, svc := setupService(t)

	store.EXPECT().ListReservationsByEmail(gomock.Any(), "cinema-one", "a@b.com").Return(
		[]types.Reservation{{ReservationID: "r-1"}, {ReservationID: "r-2"}}, nil,
	)

	reservations, err := svc.ListReservations(context.Background(), "cinema-one", "a@b.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(reservations) != 2 {
		t.Errorf("expected 2 reservations, got %d", len(reservations))
	}
}
