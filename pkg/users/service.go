// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/storage"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/internal/types"
	"github.com/canonical/ticketing-service/pkg/authentication"
)

var (
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown users and wrong passwords,
	// a login failure never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	storage StorageInterface
	issuer  authentication.TokenIssuerInterface

	bcryptCost int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Register(ctx context.Context, tenantID, email, name, password string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.Register")
	defer span.End()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &types.User{
		TenantID:     tenantID,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		s.logger.Errorf("failed to create user: %v", err)
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, tenantID, email, password string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.Login")
	defer span.End()

	user, err := s.storage.GetUser(ctx, tenantID, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthnFailure(email, "password")
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Security().AuthnFailure(email, "password")
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(ctx, user.Email, user.TenantID)
	if err != nil {
		s.logger.Errorf("failed to issue token: %v", err)
		return "", err
	}

	s.logger.Security().AuthnSuccess(email, "password")
	return token, nil
}

func NewService(storage StorageInterface, issuer authentication.TokenIssuerInterface, bcryptCost int, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.issuer = issuer
	s.bcryptCost = bcryptCost
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
