// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package reservations

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/ticketing-service/internal/http/types"
	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/storage"
	"github.com/canonical/ticketing-service/internal/validation"
	"github.com/canonical/ticketing-service/pkg/authentication"
	"github.com/canonical/ticketing-service/pkg/schedules"
)

type CreateReservationRequest struct {
	TenantID     string `json:"tenant_id"`
	ScheduleID   string `json:"schedule_id" validate:"required"`
	Seats        int    `json:"seats" validate:"required,gt=0"`
	FunctionDate string `json:"function_date"`
	MovieTitle   string `json:"movie_title"`
}

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/reservations", a.createReservation)
	router.Get("/api/v0/reservations", a.listReservations)
}

func (a *API) createReservation(w http.ResponseWriter, r *http.Request) {
	identity := authentication.GetIdentity(r.Context())
	if identity == nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.CheckStruct(req); err != nil {
		httptypes.WriteErrorWithDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenantID, err := authentication.ResolveTenantFromRequest(r, req.TenantID)
	if err != nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "tenant_id does not match token")
		return
	}

	reservation, err := a.service.CreateReservation(r.Context(), tenantID, identity.Email, CreateReservationParams{
		ScheduleID:   req.ScheduleID,
		Seats:        req.Seats,
		FunctionDate: req.FunctionDate,
		MovieTitle:   req.MovieTitle,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidSeats), errors.Is(err, schedules.ErrInsufficientSeats):
			httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, schedules.ErrConflict):
			httptypes.WriteError(w, http.StatusConflict, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			httptypes.WriteError(w, http.StatusNotFound, "schedule not found")
		default:
			httptypes.WriteError(w, http.StatusInternalServerError, "failed to create reservation")
		}
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, reservation)
}

func (a *API) listReservations(w http.ResponseWriter, r *http.Request) {
	identity := authentication.GetIdentity(r.Context())
	if identity == nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	email := identity.Email
	if q := r.URL.Query().Get("email"); q != "" && q != identity.Email {
		httptypes.WriteError(w, http.StatusUnauthorized, "email does not match token")
		return
	}

	tenantID, err := authentication.ResolveTenantFromRequest(r, "")
	if err != nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "tenant_id does not match token")
		return
	}

	reservations, err := a.service.ListReservations(r.Context(), tenantID, email)
	if err != nil {
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to list reservations")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, reservations)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
