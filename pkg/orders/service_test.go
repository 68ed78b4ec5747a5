// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orders

import (
	"context"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/internal/types"
)

func TestCreateOrderComputesTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStorageInterface(ctrl)
	svc := NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	store.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, o *types.Order) error {
			if o.TotalPrice != 12.5 {
				t.Errorf("expected total 12.5, got %f", o.TotalPrice)
			}
			if o.OrderID == "" || o.CreatedAt == "" {
				t.Errorf("expected generated id and timestamp, got %+v", o)
			}
			return nil
		},
	)

	order, err := svc.CreateOrder(context.Background(), "cinema-one", "a@b.com", []types.OrderProduct{
		{Name: "popcorn", Price: 7.5},
		{Name: "soda", Price: 5.0},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order.Email != "a@b.com" {
		t.Errorf("expected a@b.com, got %s", order.Email)
	}
}

func TestListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStorageInterface(ctrl)
	svc := NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	store.EXPECT().ListOrdersByEmail(gomock.Any(), "cinema-one", "a@b.com").Return([]types.Order{{OrderID: "o-1"}}, nil)

	orders, err := svc.ListOrders(context.Background(), "cinema-one", "a@b.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(orders) != 1 {
		t.Errorf("expected 1 order, got %d", len(orders))
	}
}
