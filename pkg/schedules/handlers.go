// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedules

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/ticketing-service/internal/http/types"
	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/storage"
	"github.com/canonical/ticketing-service/internal/types"
	"github.com/canonical/ticketing-service/internal/validation"
	"github.com/canonical/ticketing-service/pkg/authentication"
)

type CreateScheduleRequest struct {
	TenantID       string `json:"tenant_id"`
	MovieID        string `json:"movie_id" validate:"required"`
	MovieTitle     string `json:"movie_title"`
	FunctionDate   string `json:"function_date" validate:"required"`
	AvailableSeats int    `json:"available_seats" validate:"required,gt=0"`
}

type ReserveSeatsRequest struct {
	TenantID string `json:"tenant_id"`
	Seats    int    `json:"seats"`
}

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/schedules", a.createSchedule)
	router.Get("/api/v0/schedules", a.listSchedules)
	router.Get("/api/v0/schedules/{schedule_id}", a.getSchedule)
	router.Patch("/api/v0/schedules/{schedule_id}/seats", a.reserveSeats)
}

func (a *API) createSchedule(w http.ResponseWriter, r *http.Request) {
	identity := authentication.GetIdentity(r.Context())
	if identity == nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req CreateScheduleRequest
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

	schedule, err := a.service.CreateSchedule(r.Context(), tenantID, &types.Schedule{
		MovieID:        req.MovieID,
		MovieTitle:     req.MovieTitle,
		FunctionDate:   req.FunctionDate,
		AvailableSeats: req.AvailableSeats,
	})
	if err != nil {
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to create schedule")
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, schedule)
}

func (a *API) listSchedules(w http.ResponseWriter, r *http.Request) {
	identity := authentication.GetIdentity(r.Context())
	if identity == nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	tenantID, err := authentication.ResolveTenantFromRequest(r, "")
	if err != nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "tenant_id does not match token")
		return
	}

	schedules, err := a.service.ListSchedules(r.Context(), tenantID, r.URL.Query().Get("movie_id"))
	if err != nil {
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to list schedules")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, schedules)
}

func (a *API) getSchedule(w http.ResponseWriter, r *http.Request) {
	identity := authentication.GetIdentity(r.Context())
	if identity == nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	tenantID, err := authentication.ResolveTenantFromRequest(r, "")
	if err != nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "tenant_id does not match token")
		return
	}

	schedule, err := a.service.GetSchedule(r.Context(), tenantID, chi.URLParam(r, "schedule_id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteError(w, http.StatusNotFound, "schedule not found")
			return
		}
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to get schedule")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, schedule)
}

func (a *API) reserveSeats(w http.ResponseWriter, r *http.Request) {
	identity := authentication.GetIdentity(r.Context())
	if identity == nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req ReserveSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tenantID, err := authentication.ResolveTenantFromRequest(r, req.TenantID)
	if err != nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "tenant_id does not match token")
		return
	}

	schedule, err := a.service.ReserveSeats(r.Context(), tenantID, chi.URLParam(r, "schedule_id"), req.Seats)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSeats), errors.Is(err, ErrInsufficientSeats):
			httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrConflict):
			httptypes.WriteError(w, http.StatusConflict, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			httptypes.WriteError(w, http.StatusNotFound, "schedule not found")
		default:
			httptypes.WriteError(w, http.StatusInternalServerError, "failed to reserve seats")
		}
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, schedule)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
