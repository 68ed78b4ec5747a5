// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package products

//go:generate mockgen -build_flags=--mod=mod -package products -destination ./mock_products.go -source=./interfaces.go

import (
	"context"

	"github.com/canonical/ticketing-service/internal/types"
)

type ServiceInterface interface {
	CreateProduct(ctx context.Context, tenantID string, product *types.Product) (*types.Product, error)
	ListProducts(ctx context.Context, tenantID string) ([]types.Product, error)
	DeleteProduct(ctx context.Context, tenantID, productID string) error
}

type StorageInterface interface {
	CreateProduct(ctx context.Context, product *types.Product) error
	ListProducts(ctx context.Context, tenantID string) ([]types.Product, error)
	DeleteProduct(ctx context.Context, tenantID, productID string) error
}
