// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orders

//go:generate mockgen -build_flags=--mod=mod -package orders -destination ./mock_orders.go -source=./interfaces.go

import (
	"context"

	"github.com/canonical/ticketing-service/internal/types"
)

type ServiceInterface interface {
	CreateOrder(ctx context.Context, tenantID, email string, products []types.OrderProduct) (*types.Order, error)
	ListOrders(ctx context.Context, tenantID, email string) ([]types.Order, error)
}

type StorageInterface interface {
	CreateOrder(ctx context.Context, order *types.Order) error
	ListOrdersByEmail(ctx context.Context, tenantID, email string) ([]types.Order, error)
}
