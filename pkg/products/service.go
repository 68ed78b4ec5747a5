// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package products

import (
	"context"

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

func (s *Service) CreateProduct(ctx context.Context, tenantID string, product *types.Product) (*types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "products.Service.CreateProduct")
	defer span.End()

	product.TenantID = tenantID
	product.ProductID = uuid.NewString()

	if err := s.storage.CreateProduct(ctx, product); err != nil {
		s.logger.Errorf("failed to create product: %v", err)
		return nil, err
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context, tenantID string) ([]types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "products.Service.ListProducts")
	defer span.End()

	return s.storage.ListProducts(ctx, tenantID)
}

func (s *Service) DeleteProduct(ctx context.Context, tenantID, productID string) error {
	ctx, span := s.tracer.Start(ctx, "products.Service.DeleteProduct")
	defer span.End()

	return s.storage.DeleteProduct(ctx, tenantID, productID)
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
