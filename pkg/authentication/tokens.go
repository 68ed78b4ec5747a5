// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/internal/types"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenService issues and verifies HMAC-SHA256 signed tokens carrying the
// subject email and tenant. Both sides of the exchange share the secret,
// there is no external identity provider involved.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
	parser   *jwt.Parser

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (t *TokenService) Issue(ctx context.Context, email, tenantID string) (string, error) {
	_, span := t.tracer.Start(ctx, "authentication.TokenService.Issue")
	defer span.End()

	now := time.Now()
	claims := jwt.MapClaims{
		"email":     email,
		"tenant_id": tenantID,
		"iat":       now.Unix(),
		"exp":       now.Add(t.lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (t *TokenService) VerifyToken(ctx context.Context, rawToken string) (*types.Identity, error) {
	_, span := t.tracer.Start(ctx, "authentication.TokenService.VerifyToken")
	defer span.End()

	token, err := t.parser.Parse(rawToken, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		t.logger.Debugf("token parsing failed: %v", err)
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	email, _ := claims["email"].(string)
	tenantID, _ := claims["tenant_id"].(string)
	if email == "" || tenantID == "" {
		return nil, ErrTokenInvalid
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return nil, ErrTokenInvalid
	}

	return &types.Identity{
		Email:    email,
		TenantID: tenantID,
		Expiry:   expiry.Time,
	}, nil
}

func NewTokenService(secret string, lifetime time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TokenService {
	t := new(TokenService)

	t.secret = []byte(secret)
	t.lifetime = lifetime
	t.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)

	t.tracer = tracer
	t.monitor = monitor
	t.logger = logger

	return t
}
