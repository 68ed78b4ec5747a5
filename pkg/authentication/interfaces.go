// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go

import (
	"context"

	"github.com/canonical/ticketing-service/internal/types"
)

type TokenIssuerInterface interface {
	Issue(ctx context.Context, email, tenantID string) (string, error)
}

type TokenVerifierInterface interface {
	VerifyToken(ctx context.Context, rawToken string) (*types.Identity, error)
}
