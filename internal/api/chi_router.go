// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tomtom215/catalogus/internal/config"
	"github.com/tomtom215/catalogus/internal/middleware"
)

// Router wires the handlers and middleware into a Chi routing tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	cfg           *config.Config
}

// NewRouter creates a Router from an initialized handler set.
func NewRouter(handler *Handler, chiMw *ChiMiddleware, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
		cfg:           cfg,
	}
}

// resource bundles the five CRUD handlers a TMF resource exposes.
type resource struct {
	path   string
	list   http.HandlerFunc
	create http.HandlerFunc
	get    http.HandlerFunc
	update http.HandlerFunc
	remove http.HandlerFunc
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to handle OPTIONS preflight
	r.Use(SecurityHeaders())
	r.Use(middleware.PrometheusMetrics)

	h := router.handler

	// ========================
	// TMF Domain APIs
	// ========================
	router.mountDomain(r, domainCatalog,
		resource{path: "catalog", list: h.ListCatalogs, create: h.CreateCatalog, get: h.GetCatalog, update: h.UpdateCatalog, remove: h.DeleteCatalog},
		resource{path: "category", list: h.ListCategories, create: h.CreateCategory, get: h.GetCategory, update: h.UpdateCategory, remove: h.DeleteCategory},
		resource{path: "productOffering", list: h.ListProductOfferings, create: h.CreateProductOffering, get: h.GetProductOffering, update: h.UpdateProductOffering, remove: h.DeleteProductOffering},
		resource{path: "productSpecification", list: h.ListProductSpecifications, create: h.CreateProductSpecification, get: h.GetProductSpecification, update: h.UpdateProductSpecification, remove: h.DeleteProductSpecification},
	)
	router.mountDomain(r, domainCustomer,
		resource{path: "customer", list: h.ListCustomers, create: h.CreateCustomer, get: h.GetCustomer, update: h.UpdateCustomer, remove: h.DeleteCustomer},
	)
	router.mountDomain(r, domainParty,
		resource{path: "individual", list: h.ListIndividuals, create: h.CreateIndividual, get: h.GetIndividual, update: h.UpdateIndividual, remove: h.DeleteIndividual},
		resource{path: "organization", list: h.ListOrganizations, create: h.CreateOrganization, get: h.GetOrganization, update: h.UpdateOrganization, remove: h.DeleteOrganization},
	)
	router.mountDomain(r, domainAddress,
		resource{path: "geographicAddress", list: h.ListGeographicAddresses, create: h.CreateGeographicAddress, get: h.GetGeographicAddress, update: h.UpdateGeographicAddress, remove: h.DeleteGeographicAddress},
	)

	// ========================
	// Operational Endpoints
	// ========================
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// mountDomain registers one TMF API root with its resources and hub endpoints.
// Every domain gets pagination parsing, fields projection on responses, and
// method-aware rate limiting.
func (router *Router) mountDomain(r chi.Router, domain string, resources ...resource) {
	paginationCfg := middleware.PaginationConfig{
		DefaultLimit: router.cfg.API.DefaultPageSize,
		MaxLimit:     router.cfg.API.MaxPageSize,
	}

	r.Route("/tmf-api/"+domain+"/v4", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.Paginate(paginationCfg))
		r.Use(middleware.FieldsFilter)

		for _, res := range resources {
			r.Get("/"+res.path, res.list)
			r.Post("/"+res.path, res.create)
			r.Get("/"+res.path+"/{id}", res.get)
			r.Patch("/"+res.path+"/{id}", res.update)
			r.Delete("/"+res.path+"/{id}", res.remove)
		}

		r.Post("/hub", router.handler.RegisterSubscription(domain))
		r.Delete("/hub/{id}", router.handler.UnregisterSubscription(domain))
	})
}
