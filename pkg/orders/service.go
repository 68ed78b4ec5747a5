// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orders

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

// CreateOrder stores the order with its total recomputed server side from
// the line items, the client supplied total is ignored.
func (s *Service) CreateOrder(ctx context.Context, tenantID, email string, products []types.OrderProduct) (*types.Order, error) {
	ctx, span := s.tracer.Start(ctx, "orders.Service.CreateOrder")
	defer span.End()

	total := 0.0
	for _, p := range products {
		total += p.Price
	}

	order := &types.Order{
		TenantID:   tenantID,
		OrderID:    uuid.NewString(),
		Email:      email,
		Products:   products,
		TotalPrice: total,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.storage.CreateOrder(ctx, order); err != nil {
		s.logger.Errorf("failed to create order: %v", err)
		return nil, err
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, tenantID, email string) ([]types.Order, error) {
	ctx, span := s.tracer.Start(ctx, "orders.Service.ListOrders")
	defer span.End()

	return s.storage.ListOrdersByEmail(ctx, tenantID, email)
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
