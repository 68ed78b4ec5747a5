// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	httptypes "github.com/canonical/ticketing-service/internal/http/types"
	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/types"
)

func setupAPI(t *testing.T) (*MockServiceInterface, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := NewMockServiceInterface(ctrl)

	router := chi.NewMux()
	NewAPI(service, logging.NewNoopLogger()).RegisterEndpoints(router)

	return service, router
}

func TestRegisterHandler(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "Created",
			body: `{"tenant_id": "cinema-one", "email": "a@b.com", "name": "Ada", "password": "hunter2secret"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), "cinema-one", "a@b.com", "Ada", "hunter2secret").Return(
					&types.User{TenantID: "cinema-one", Email: "a@b.com", Name: "Ada"}, nil,
				)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "MissingFields",
			body:           `{"email": "a@b.com"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "MalformedBody",
			body:           `{"email": `,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Duplicate",
			body: `{"tenant_id": "cinema-one", "email": "a@b.com", "name": "Ada", "password": "hunter2secret"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), "cinema-one", "a@b.com", "Ada", "hunter2secret").Return(nil, ErrUserExists)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, router := setupAPI(t)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/users", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}

func TestRegisterResponseOmitsPasswordHash(t *testing.T) {
	service, router := setupAPI(t)

	service.EXPECT().Register(gomock.Any(), "cinema-one", "a@b.com", "Ada", "hunter2secret").Return(
		&types.User{TenantID: "cinema-one", Email: "a@b.com", Name: "Ada", PasswordHash: "$2a$10$abc"}, nil,
	)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/users",
		strings.NewReader(`{"tenant_id": "cinema-one", "email": "a@b.com", "name": "Ada", "password": "hunter2secret"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), "$2a$10$abc") || strings.Contains(rec.Body.String(), "password_hash") {
		t.Errorf("response leaked the password hash: %s", rec.Body.String())
	}
}

func TestLoginHandler(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: `{"tenant_id": "cinema-one", "email": "a@b.com", "password": "hunter2secret"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Login(gomock.Any(), "cinema-one", "a@b.com", "hunter2secret").Return("signed-token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "BadCredentials",
			body: `{"tenant_id": "cinema-one", "email": "a@b.com", "password": "wrong"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Login(gomock.Any(), "cinema-one", "a@b.com", "wrong").Return("", ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Credenciales incorrectas",
		},
		{
			name:           "MissingPassword",
			body:           `{"tenant_id": "cinema-one", "email": "a@b.com"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, router := setupAPI(t)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/users/login", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			if tc.expectedStatus == http.StatusOK {
				var body LoginResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body.Token != "signed-token" {
					t.Errorf("expected token in response, got %s", rec.Body.String())
				}
			}
			if tc.expectedError != "" {
				var body httptypes.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body.Error != tc.expectedError {
					t.Errorf("expected error %q, got %s", tc.expectedError, rec.Body.String())
				}
			}
		})
	}
}
