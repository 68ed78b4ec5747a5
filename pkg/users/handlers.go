// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/ticketing-service/internal/http/types"
	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/validation"
)

type RegisterRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

// RegisterEndpoints mounts the two endpoints reachable without a token.
func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/users", a.register)
	router.Post("/api/v0/users/login", a.login)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.CheckStruct(req); err != nil {
		httptypes.WriteErrorWithDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := a.service.Register(r.Context(), req.TenantID, req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			httptypes.WriteError(w, http.StatusConflict, "user already exists")
			return
		}
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, user)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.CheckStruct(req); err != nil {
		httptypes.WriteErrorWithDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	token, err := a.service.Login(r.Context(), req.TenantID, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httptypes.WriteError(w, http.StatusUnauthorized, "Credenciales incorrectas")
			return
		}
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, LoginResponse{Token: token})
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
