// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"testing"

	gomock "go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/storage"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/internal/types"
	"github.com/canonical/ticketing-service/pkg/authentication"
)

func setupService(t *testing.T) (*MockStorageInterface, *authentication.MockTokenIssuerInterface, *Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := NewMockStorageInterface(ctrl)
	issuer := authentication.NewMockTokenIssuerInterface(ctrl)

	svc := NewService(store, issuer, bcrypt.MinCost, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return store, issuer, svc
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func TestRegister(t *testing.T) {
	store, _, svc := setupService(t)

	store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, u *types.User) error {
			if u.TenantID != "cinema-one" || u.Email != "a@b.com" || u.Name != "Ada" {
				t.Errorf("unexpected user %+v", u)
			}
			if u.PasswordHash == "" || u.PasswordHash == "hunter2secret" {
				t.Errorf("expected hashed password, got %q", u.PasswordHash)
			}
			if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2secret")); err != nil {
				t.Errorf("stored hash does not match password: %v", err)
			}
			return nil
		},
	)

	user, err := svc.Register(context.Background(), "cinema-one", "a@b.com", "Ada", "hunter2secret")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Email != "a@b.com" {
		t.Errorf("expected a@b.com, got %s", user.Email)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	store, _, svc := setupService(t)

	store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(storage.ErrDuplicateKey)

	_, err := svc.Register(context.Background(), "cinema-one", "a@b.com", "Ada", "hunter2secret")
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	hash := ""

	testCases := []struct {
		name          string
		password      string
		setupMocks    func(*MockStorageInterface, *authentication.MockTokenIssuerInterface)
		expectedErr   error
		expectedToken string
	}{
		{
			name:     "Success",
			password: "hunter2secret",
			setupMocks: func(s *MockStorageInterface, i *authentication.MockTokenIssuerInterface) {
				s.EXPECT().GetUser(gomock.Any(), "cinema-one", "a@b.com").Return(
					&types.User{TenantID: "cinema-one", Email: "a@b.com", PasswordHash: hash}, nil,
				)
				i.EXPECT().Issue(gomock.Any(), "a@b.com", "cinema-one").Return("signed-token", nil)
			},
			expectedToken: "signed-token",
		},
		{
			name:     "WrongPassword",
			password: "wrong",
			setupMocks: func(s *MockStorageInterface, i *authentication.MockTokenIssuerInterface) {
				s.EXPECT().GetUser(gomock.Any(), "cinema-one", "a@b.com").Return(
					&types.User{TenantID: "cinema-one", Email: "a@b.com", PasswordHash: hash}, nil,
				)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "UnknownUser",
			password: "hunter2secret",
			setupMocks: func(s *MockStorageInterface, i *authentication.MockTokenIssuerInterface) {
				s.EXPECT().GetUser(gomock.Any(), "cinema-one", "a@b.com").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "StorageError",
			password: "hunter2secret",
			setupMocks: func(s *MockStorageInterface, i *authentication.MockTokenIssuerInterface) {
				s.EXPECT().GetUser(gomock.Any(), "cinema-one", "a@b.com").Return(nil, errors.New("throttled"))
			},
			expectedErr: errors.New("throttled"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, issuer, svc := setupService(t)
			hash = hashPassword(t, "hunter2secret")
			tc.setupMocks(store, issuer)

			token, err := svc.Login(context.Background(), "cinema-one", "a@b.com", tc.password)

			if tc.expectedErr != nil {
				if err == nil || err.Error() != tc.expectedErr.Error() {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if token != tc.expectedToken {
				t.Errorf("expected token %s, got %s", tc.expectedToken, token)
			}
		})
	}
}
