// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/catalogus/internal/middleware"
	"github.com/tomtom215/catalogus/internal/models"
)

// TMF620 Product Catalog Management handlers. All four resources follow the
// same decode, validate, store, publish, respond sequence; a nil store
// result on get/update means 404, a false delete result means 404.

func (h *Handler) CreateCatalog(w http.ResponseWriter, r *http.Request) {
	var req models.CatalogCreate
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	catalog, err := h.db.CreateCatalog(r.Context(), &req)
	if err != nil {
		sendError(w, r, internalError("failed to create catalog: "+err.Error()))
		return
	}

	h.publishEvent(domainCatalog, "CatalogCreateEvent", "catalog", catalog)
	sendCreated(w, r, catalog)
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.db.GetCatalog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, r, internalError("failed to get catalog: "+err.Error()))
		return
	}
	if catalog == nil {
		sendError(w, r, notFoundError("catalog not found"))
		return
	}
	sendJSON(w, r, catalog)
}

func (h *Handler) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	page := middleware.GetPagination(r.Context())
	catalogs, total, err := h.db.ListCatalogs(r.Context(), page.Offset, page.Limit)
	if err != nil {
		sendError(w, r, internalError("failed to list catalogs: "+err.Error()))
		return
	}
	sendList(w, r, catalogs, total, len(catalogs))
}

func (h *Handler) UpdateCatalog(w http.ResponseWriter, r *http.Request) {
	var patch models.CatalogUpdate
	if apiErr := decodeJSON(r, &patch); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	catalog, err := h.db.UpdateCatalog(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		sendError(w, r, internalError("failed to update catalog: "+err.Error()))
		return
	}
	if catalog == nil {
		sendError(w, r, notFoundError("catalog not found"))
		return
	}

	h.publishEvent(domainCatalog, "CatalogAttributeValueChangeEvent", "catalog", catalog)
	sendJSON(w, r, catalog)
}

func (h *Handler) DeleteCatalog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.db.DeleteCatalog(r.Context(), id)
	if err != nil {
		sendError(w, r, internalError("failed to delete catalog: "+err.Error()))
		return
	}
	if !deleted {
		sendError(w, r, notFoundError("catalog not found"))
		return
	}

	h.publishEvent(domainCatalog, "CatalogDeleteEvent", "catalog", map[string]interface{}{"id": id})
	sendNoContent(w)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryCreate
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	category, err := h.db.CreateCategory(r.Context(), &req)
	if err != nil {
		sendError(w, r, internalError("failed to create category: "+err.Error()))
		return
	}

	h.publishEvent(domainCatalog, "CategoryCreateEvent", "category", category)
	sendCreated(w, r, category)
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.db.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, r, internalError("failed to get category: "+err.Error()))
		return
	}
	if category == nil {
		sendError(w, r, notFoundError("category not found"))
		return
	}
	sendJSON(w, r, category)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	page := middleware.GetPagination(r.Context())
	categories, total, err := h.db.ListCategories(r.Context(), page.Offset, page.Limit)
	if err != nil {
		sendError(w, r, internalError("failed to list categories: "+err.Error()))
		return
	}
	sendList(w, r, categories, total, len(categories))
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var patch models.CategoryUpdate
	if apiErr := decodeJSON(r, &patch); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	category, err := h.db.UpdateCategory(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		sendError(w, r, internalError("failed to update category: "+err.Error()))
		return
	}
	if category == nil {
		sendError(w, r, notFoundError("category not found"))
		return
	}

	h.publishEvent(domainCatalog, "CategoryAttributeValueChangeEvent", "category", category)
	sendJSON(w, r, category)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.db.DeleteCategory(r.Context(), id)
	if err != nil {
		sendError(w, r, internalError("failed to delete category: "+err.Error()))
		return
	}
	if !deleted {
		sendError(w, r, notFoundError("category not found"))
		return
	}

	h.publishEvent(domainCatalog, "CategoryDeleteEvent", "category", map[string]interface{}{"id": id})
	sendNoContent(w)
}

func (h *Handler) CreateProductOffering(w http.ResponseWriter, r *http.Request) {
	var req models.ProductOfferingCreate
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	offering, err := h.db.CreateProductOffering(r.Context(), &req)
	if err != nil {
		sendError(w, r, internalError("failed to create product offering: "+err.Error()))
		return
	}

	h.publishEvent(domainCatalog, "ProductOfferingCreateEvent", "productOffering", offering)
	sendCreated(w, r, offering)
}

func (h *Handler) GetProductOffering(w http.ResponseWriter, r *http.Request) {
	offering, err := h.db.GetProductOffering(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, r, internalError("failed to get product offering: "+err.Error()))
		return
	}
	if offering == nil {
		sendError(w, r, notFoundError("product offering not found"))
		return
	}
	sendJSON(w, r, offering)
}

func (h *Handler) ListProductOfferings(w http.ResponseWriter, r *http.Request) {
	page := middleware.GetPagination(r.Context())
	offerings, total, err := h.db.ListProductOfferings(r.Context(), page.Offset, page.Limit)
	if err != nil {
		sendError(w, r, internalError("failed to list product offerings: "+err.Error()))
		return
	}
	sendList(w, r, offerings, total, len(offerings))
}

func (h *Handler) UpdateProductOffering(w http.ResponseWriter, r *http.Request) {
	var patch models.ProductOfferingUpdate
	if apiErr := decodeJSON(r, &patch); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	offering, err := h.db.UpdateProductOffering(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		sendError(w, r, internalError("failed to update product offering: "+err.Error()))
		return
	}
	if offering == nil {
		sendError(w, r, notFoundError("product offering not found"))
		return
	}

	h.publishEvent(domainCatalog, "ProductOfferingAttributeValueChangeEvent", "productOffering", offering)
	sendJSON(w, r, offering)
}

func (h *Handler) DeleteProductOffering(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.db.DeleteProductOffering(r.Context(), id)
	if err != nil {
		sendError(w, r, internalError("failed to delete product offering: "+err.Error()))
		return
	}
	if !deleted {
		sendError(w, r, notFoundError("product offering not found"))
		return
	}

	h.publishEvent(domainCatalog, "ProductOfferingDeleteEvent", "productOffering", map[string]interface{}{"id": id})
	sendNoContent(w)
}

func (h *Handler) CreateProductSpecification(w http.ResponseWriter, r *http.Request) {
	var req models.ProductSpecificationCreate
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	spec, err := h.db.CreateProductSpecification(r.Context(), &req)
	if err != nil {
		sendError(w, r, internalError("failed to create product specification: "+err.Error()))
		return
	}

	h.publishEvent(domainCatalog, "ProductSpecificationCreateEvent", "productSpecification", spec)
	sendCreated(w, r, spec)
}

func (h *Handler) GetProductSpecification(w http.ResponseWriter, r *http.Request) {
	spec, err := h.db.GetProductSpecification(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, r, internalError("failed to get product specification: "+err.Error()))
		return
	}
	if spec == nil {
		sendError(w, r, notFoundError("product specification not found"))
		return
	}
	sendJSON(w, r, spec)
}

func (h *Handler) ListProductSpecifications(w http.ResponseWriter, r *http.Request) {
	page := middleware.GetPagination(r.Context())
	specs, total, err := h.db.ListProductSpecifications(r.Context(), page.Offset, page.Limit)
	if err != nil {
		sendError(w, r, internalError("failed to list product specifications: "+err.Error()))
		return
	}
	sendList(w, r, specs, total, len(specs))
}

func (h *Handler) UpdateProductSpecification(w http.ResponseWriter, r *http.Request) {
	var patch models.ProductSpecificationUpdate
	if apiErr := decodeJSON(r, &patch); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	spec, err := h.db.UpdateProductSpecification(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		sendError(w, r, internalError("failed to update product specification: "+err.Error()))
		return
	}
	if spec == nil {
		sendError(w, r, notFoundError("product specification not found"))
		return
	}

	h.publishEvent(domainCatalog, "ProductSpecificationAttributeValueChangeEvent", "productSpecification", spec)
	sendJSON(w, r, spec)
}

func (h *Handler) DeleteProductSpecification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.db.DeleteProductSpecification(r.Context(), id)
	if err != nil {
		sendError(w, r, internalError("failed to delete product specification: "+err.Error()))
		return
	}
	if !deleted {
		sendError(w, r, notFoundError("product specification not found"))
		return
	}

	h.publishEvent(domainCatalog, "ProductSpecificationDeleteEvent", "productSpecification", map[string]interface{}{"id": id})
	sendNoContent(w)
}
