// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"

	"github.com/canonical/ticketing-service/internal/types"
)

type contextKey int

const identityContextKey contextKey = iota

var ErrTenantMismatch = errors.New("tenant does not match token")

func WithIdentity(ctx context.Context, identity *types.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// GetIdentity returns the authenticated identity, or nil on requests that
// did not pass through the middleware.
func GetIdentity(ctx context.Context) *types.Identity {
	identity, _ := ctx.Value(identityContextKey).(*types.Identity)
	return identity
}

// ResolveTenant returns the tenant the request is allowed to act on. A
// caller supplied tenant is accepted only when it matches the token.
func ResolveTenant(ctx context.Context, requested string) (string, error) {
	identity := GetIdentity(ctx)
	if identity == nil {
		return "", errors.New("no identity in context")
	}
	if requested != "" && requested != identity.TenantID {
		return "", ErrTenantMismatch
	}
	return identity.TenantID, nil
}

// ResolveTenantFromRequest resolves the tenant for a request, rejecting an
// explicit tenant_id in the query string or the decoded body that differs
// from the token.
func ResolveTenantFromRequest(r *http.Request, bodyTenantID string) (string, error) {
	tenant, err := ResolveTenant(r.Context(), r.URL.Query().Get("tenant_id"))
	if err != nil {
		return "", err
	}
	if bodyTenantID != "" && bodyTenantID != tenant {
		return "", ErrTenantMismatch
	}
	return tenant, nil
}
