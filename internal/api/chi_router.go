// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Package api provides HTTP routing using Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/THB213/AI-Solutions-Dashboard/internal/middleware"
)

// Router assembles the HTTP surface.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter wires a Router.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	return &Router{handler: handler, chiMiddleware: mw}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)              // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)              // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)           // Recover from panics
	r.Use(router.chiMiddleware.CORS())       // CORS must be global to handle OPTIONS preflight

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Log Ingestion
	// ========================
	// Upload is the one mutating, expensive operation; strict rate limit.
	r.Route("/api/v1/logs", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitUpload())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Post("/upload", router.handler.UploadLogs)
	})

	// ========================
	// Generic Metric Dispatch
	// ========================
	r.Route("/api/v1/metrics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/{name}", router.handler.Metric)
	})

	// ========================
	// Analytics Endpoints
	// ========================
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/years", router.handler.Years)
		r.Get("/traffic", router.handler.TrafficOverview)
		r.Get("/hourly", router.handler.HourlyTraffic)
		r.Get("/daily", router.handler.DailyVisitors)
		r.Get("/bounce", router.handler.BounceRate)
		r.Get("/unique-visitors", router.handler.UniqueVisitors)
		r.Get("/top-pages", router.handler.TopPages)
		r.Get("/top-agents", router.handler.TopAgents)
		r.Get("/referrers", router.handler.Referrers)
		r.Get("/geo", router.handler.GeoDistribution)
		r.Get("/virtual-assistant", router.handler.VirtualAssistant)

		r.Route("/sales", func(r chi.Router) {
			r.Get("/summary", router.handler.SalesSummary)
			r.Get("/monthly-profit", router.handler.MonthlyProfit)
			r.Get("/weekly-revenue", router.handler.WeeklyRevenue)
			r.Get("/traffic-sources", router.handler.SalesTrafficSources)
			r.Get("/by-country", router.handler.SalesByCountry)
			r.Get("/employees", router.handler.EmployeePerformance)
			r.Get("/products", router.handler.ProductPerformance)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
