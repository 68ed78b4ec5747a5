// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package products

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

type CreateProductRequest struct {
	TenantID    string  `json:"tenant_id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/products", a.createProduct)
	router.Get("/api/v0/products", a.listProducts)
	router.Delete("/api/v0/products/{product_id}", a.deleteProduct)
}

func (a *API) createProduct(w http.ResponseWriter, r *http.Request) {
	identity := authentication.GetIdentity(r.Context())
	if identity == nil {
		httptypes.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req CreateProductRequest
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

	product, err := a.service.CreateProduct(r.Context(), tenantID, &types.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, product)
}

func (a *API) listProducts(w http.ResponseWriter, r *http.Request) {
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

	products, err := a.service.ListProducts(r.Context(), tenantID)
	if err != nil {
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, products)
}

func (a *API) deleteProduct(w http.ResponseWriter, r *http.Request) {
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

	if err := a.service.DeleteProduct(r.Context(), tenantID, chi.URLParam(r, "product_id")); err != nil {
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.MessageResponse{Message: "product deleted"})
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
