// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orders

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/ticketing-service/internal/http/types"
	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/types"
	"github.com/canonical/ticketing-service/internal/validation"
	"github.com/canonical/ticketing-service/pkg/authentication"
)

type CreateOrderRequest struct {
	TenantID string               `json:"tenant_id"`
	Products []types.OrderProduct `json:"products" validate:"required,min=1,dive"`
}

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/orders", a.createOrder)
	router.Get("/api/v0/orders", a.listOrders)
}

func (a *API) createOrder(w http.ResponseWriter, r *http.Request) {
	identity := authentication.GetIdentity(r.Context())
	if identity == nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req CreateOrderRequest
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

	order, err := a.service.CreateOrder(r.Context(), tenantID, identity.Email, req.Products)
	if err != nil {
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, order)
}

func (a *API) listOrders(w http.ResponseWriter, r *http.Request) {
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

	orders, err := a.service.ListOrders(r.Context(), tenantID, email)
	if err != nil {
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, orders)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
