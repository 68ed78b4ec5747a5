// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_users.go -source=./interfaces.go

import (
	"context"

	"github.com/canonical/ticketing-service/internal/types"
)

type ServiceInterface interface {
	Register(ctx context.Context, tenantID, email, name, password string) (*types.User, error)
	Login(ctx context.Context, tenantID, email, password string) (string, error)
}

type StorageInterface interface {
	CreateUser(ctx context.Context, user *types.User) error
	GetUser(ctx context.Context, tenantID, email string) (*types.User, error)
}
