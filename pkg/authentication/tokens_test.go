// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/internal/types"
)

func newTokenService(secret string, lifetime time.Duration) *TokenService {
	return NewTokenService(secret, lifetime, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTokenService("s3cret", time.Hour)

	raw, err := svc.Issue(context.Background(), "a@b.com", "cinema-one")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	identity, err := svc.VerifyToken(context.Background(), raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if identity.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %s", identity.Email)
	}
	if identity.TenantID != "cinema-one" {
		t.Errorf("expected tenant cinema-one, got %s", identity.TenantID)
	}

	remaining := time.Until(identity.Expiry)
	if remaining < 59*time.Minute || remaining > time.Hour {
		t.Errorf("expected expiry about an hour away, got %v", remaining)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := newTokenService("s3cret", -time.Minute)

	raw, err := svc.Issue(context.Background(), "a@b.com", "cinema-one")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := svc.VerifyToken(context.Background(), raw); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc := newTokenService("s3cret", time.Hour)

	signed := func(method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
		raw, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("failed to sign test token: %v", err)
		}
		return raw
	}

	exp := time.Now().Add(time.Hour).Unix()

	testCases := []struct {
		name  string
		token string
	}{
		{
			name:  "Garbage",
			token: "not-a-token",
		},
		{
			name:  "WrongSecret",
			token: signed(jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"email": "a@b.com", "tenant_id": "cinema-one", "exp": exp}),
		},
		{
			name:  "MissingExpiry",
			token: signed(jwt.SigningMethodHS256, []byte("s3cret"), jwt.MapClaims{"email": "a@b.com", "tenant_id": "cinema-one"}),
		},
		{
			name:  "MissingTenant",
			token: signed(jwt.SigningMethodHS256, []byte("s3cret"), jwt.MapClaims{"email": "a@b.com", "exp": exp}),
		},
		{
			name:  "UnsignedAlgorithm",
			token: signed(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"email": "a@b.com", "tenant_id": "cinema-one", "exp": exp}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.VerifyToken(context.Background(), tc.token); !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}

func TestResolveTenant(t *testing.T) {
	svc := newTokenService("s3cret", time.Hour)

	raw, _ := svc.Issue(context.Background(), "a@b.com", "cinema-one")
	identity, err := svc.VerifyToken(context.Background(), raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	ctx := WithIdentity(context.Background(), identity)

	if tenant, err := ResolveTenant(ctx, ""); err != nil || tenant != "cinema-one" {
		t.Errorf("expected cinema-one, got %s (%v)", tenant, err)
	}
	if tenant, err := ResolveTenant(ctx, "cinema-one"); err != nil || tenant != "cinema-one" {
		t.Errorf("expected cinema-one, got %s (%v)", tenant, err)
	}
	if _, err := ResolveTenant(ctx, "cinema-two"); !errors.Is(err, ErrTenantMismatch) {
		t.Errorf("expected ErrTenantMismatch, got %v", err)
	}
	if _, err := ResolveTenant(context.Background(), "cinema-one"); err == nil {
		t.Errorf("expected error without identity in context")
	}
}

func TestResolveTenantFromRequest(t *testing.T) {
	identity := &types.Identity{Email: "a@b.com", TenantID: "cinema-one"}

	testCases := []struct {
		name     string
		target   string
		bodyID   string
		expected string
		err      error
	}{
		{
			name:     "NoTenantSupplied",
			target:   "/api/v0/movies",
			expected: "cinema-one",
		},
		{
			name:     "MatchingQuery",
			target:   "/api/v0/movies?tenant_id=cinema-one",
			expected: "cinema-one",
		},
		{
			name:   "MismatchedQuery",
			target: "/api/v0/movies?tenant_id=cinema-two",
			err:    ErrTenantMismatch,
		},
		{
			name:     "MatchingBody",
			target:   "/api/v0/movies",
			bodyID:   "cinema-one",
			expected: "cinema-one",
		},
		{
			name:   "MismatchedBody",
			target: "/api/v0/movies",
			bodyID: "cinema-two",
			err:    ErrTenantMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			req = req.WithContext(WithIdentity(req.Context(), identity))

			tenant, err := ResolveTenantFromRequest(req, tc.bodyID)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil || tenant != tc.expected {
				t.Errorf("expected %s, got %s (%v)", tc.expected, tenant, err)
			}
		})
	}

	t.Run("NoIdentity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v0/movies", nil)
		if _, err := ResolveTenantFromRequest(req, ""); err == nil {
			t.Errorf("expected error without identity in context")
		}
	})
}
