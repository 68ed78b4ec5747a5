// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedules

import (
	"context"
	"errors"
	"sync"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/storage"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/internal/types"
)

func newService(s StorageInterface) *Service {
	return NewService(s, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestReserveSeats(t *testing.T) {
	testCases := []struct {
		name          string
		seats         int
		setupMocks    func(*MockStorageInterface)
		expectedErr   error
		expectedSeats int
	}{
		{
			name:  "Success",
			seats: 2,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetSchedule(gomock.Any(), "cinema-one", "schedule-1").Return(
					&types.Schedule{TenantID: "cinema-one", ScheduleID: "schedule-1", AvailableSeats: 10}, nil,
				)
				s.EXPECT().UpdateScheduleSeats(gomock.Any(), "cinema-one", "schedule-1", 10, 8).Return(nil)
			},
			expectedSeats: 8,
		},
		{
			name:        "ZeroSeats",
			seats:       0,
			setupMocks:  func(s *MockStorageInterface) {},
			expectedErr: ErrInvalidSeats,
		},
		{
			name:        "NegativeSeats",
			seats:       -3,
			setupMocks:  func(s *MockStorageInterface) {},
			expectedErr: ErrInvalidSeats,
		},
		{
			name:  "NotFound",
			seats: 2,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetSchedule(gomock.Any(), "cinema-one", "schedule-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:  "InsufficientSeats",
			seats: 11,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetSchedule(gomock.Any(), "cinema-one", "schedule-1").Return(
					&types.Schedule{TenantID: "cinema-one", ScheduleID: "schedule-1", AvailableSeats: 10}, nil,
				)
			},
			expectedErr: ErrInsufficientSeats,
		},
		{
			name:  "RetryAfterContention",
			seats: 2,
			setupMocks: func(s *MockStorageInterface) {
				first := s.EXPECT().GetSchedule(gomock.Any(), "cinema-one", "schedule-1").Return(
					&types.Schedule{TenantID: "cinema-one", ScheduleID: "schedule-1", AvailableSeats: 10}, nil,
				)
				s.EXPECT().UpdateScheduleSeats(gomock.Any(), "cinema-one", "schedule-1", 10, 8).Return(storage.ErrVersionMismatch)
				s.EXPECT().GetSchedule(gomock.Any(), "cinema-one", "schedule-1").Return(
					&types.Schedule{TenantID: "cinema-one", ScheduleID: "schedule-1", AvailableSeats: 7}, nil,
				).After(first)
				s.EXPECT().UpdateScheduleSeats(gomock.Any(), "cinema-one", "schedule-1", 7, 5).Return(nil)
			},
			expectedSeats: 5,
		},
		{
			name:  "ConflictAfterExhaustedRetries",
			seats: 2,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetSchedule(gomock.Any(), "cinema-one", "schedule-1").Return(
					&types.Schedule{TenantID: "cinema-one", ScheduleID: "schedule-1", AvailableSeats: 10}, nil,
				).Times(3)
				s.EXPECT().UpdateScheduleSeats(gomock.Any(), "cinema-one", "schedule-1", 10, 8).Return(storage.ErrVersionMismatch).Times(3)
			},
			expectedErr: ErrConflict,
		},
		{
			name:  "StorageError",
			seats: 2,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetSchedule(gomock.Any(), "cinema-one", "schedule-1").Return(
					&types.Schedule{TenantID: "cinema-one", ScheduleID: "schedule-1", AvailableSeats: 10}, nil,
				)
				s.EXPECT().UpdateScheduleSeats(gomock.Any(), "cinema-one", "schedule-1", 10, 8).Return(errors.New("throttled"))
			},
			expectedErr: errors.New("throttled"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockStorageInterface(ctrl)
			tc.setupMocks(store)

			schedule, err := newService(store).ReserveSeats(context.Background(), "cinema-one", "schedule-1", tc.seats)

			if tc.expectedErr != nil {
				if err == nil || err.Error() != tc.expectedErr.Error() {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if schedule.AvailableSeats != tc.expectedSeats {
				t.Errorf("expected %d seats remaining, got %d", tc.expectedSeats, schedule.AvailableSeats)
			}
		})
	}
}

// conditionalSeatStore mimics the conditional update semantics of the real
// backend so concurrent reservations race against a live seat count.
type conditionalSeatStore struct {
	mu       sync.Mutex
	schedule types.Schedule
}

func (c *conditionalSeatStore) CreateSchedule(ctx context.Context, schedule *types.Schedule) error {
	return nil
}

func (c *conditionalSeatStore) GetSchedule(ctx context.Context, tenantID, scheduleID string) (*types.Schedule, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := c.schedule
	return &snapshot, nil
}

func (c *conditionalSeatStore) ListSchedules(ctx context.Context, tenantID, movieID string) ([]types.Schedule, error) {
	return nil, nil
}

func (c *conditionalSeatStore) UpdateScheduleSeats(ctx context.Context, tenantID, scheduleID string, expected, available int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.schedule.AvailableSeats != expected {
		return storage.ErrVersionMismatch
	}
	c.schedule.AvailableSeats = available
	return nil
}

func TestReserveSeatsNeverOversells(t *testing.T) {
	const (
		totalSeats = 40
		workers    = 100
	)

	store := &conditionalSeatStore{
		schedule: types.Schedule{TenantID: "cinema-one", ScheduleID: "schedule-1", AvailableSeats: totalSeats},
	}
	svc := newService(store)

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ReserveSeats(context.Background(), "cinema-one", "schedule-1", 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrInsufficientSeats), errors.Is(err, ErrConflict):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	remaining := store.schedule.AvailableSeats
	if remaining < 0 {
		t.Fatalf("seat count went negative: %d", remaining)
	}
	if succeeded != totalSeats-remaining {
		t.Errorf("%d reservations succeeded but %d seats were taken", succeeded, totalSeats-remaining)
	}
	if succeeded > totalSeats {
		t.Errorf("oversold: %d reservations for %d seats", succeeded, totalSeats)
	}
}
