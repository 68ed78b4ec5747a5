// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package movies

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

type CreateMovieRequest struct {
	TenantID    string `json:"tenant_id"`
	Title       string `json:"title" validate:"required"`
	Genre       string `json:"genre" validate:"required"`
	ReleaseDate string `json:"release_date" validate:"required"`
	Description string `json:"description"`
}

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/movies", a.createMovie)
	router.Get("/api/v0/movies", a.listMovies)
	router.Get("/api/v0/movies/{movie_id}", a.getMovie)
}

func (a *API) createMovie(w http.ResponseWriter, r *http.Request) {
	identity := authentication.GetIdentity(r.Context())
	if identity == nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req CreateMovieRequest
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

	movie, err := a.service.CreateMovie(r.Context(), tenantID, &types.Movie{
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseDate: req.ReleaseDate,
		Description: req.Description,
	})
	if err != nil {
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to create movie")
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, movie)
}

func (a *API) listMovies(w http.ResponseWriter, r *http.Request) {
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

	movies, err := a.service.ListMovies(r.Context(), tenantID)
	if err != nil {
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to list movies")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, movies)
}

func (a *API) getMovie(w http.ResponseWriter, r *http.Request) {
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

	movie, err := a.service.GetMovie(r.Context(), tenantID, chi.URLParam(r, "movie_id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteError(w, http.StatusNotFound, "movie not found")
			return
		}
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to get movie")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, movie)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
