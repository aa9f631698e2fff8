// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/THB213/AI-Solutions-Dashboard/internal/analytics"
	"github.com/THB213/AI-Solutions-Dashboard/internal/config"
	"github.com/THB213/AI-Solutions-Dashboard/internal/ingest"
	"github.com/THB213/AI-Solutions-Dashboard/internal/models"
	"github.com/THB213/AI-Solutions-Dashboard/internal/referrer"
	"github.com/THB213/AI-Solutions-Dashboard/internal/store"
	"github.com/THB213/AI-Solutions-Dashboard/internal/validation"
)

// Handler bundles the collaborators the HTTP endpoints need.
type Handler struct {
	engine    *analytics.Engine
	ingestor  *ingest.Ingestor
	store     *store.Store
	cfg       *config.Config
	version   string
	startTime time.Time
}

// NewHandler wires a Handler.
func NewHandler(
	engine *analytics.Engine,
	ingestor *ingest.Ingestor,
	st *store.Store,
	cfg *config.Config,
	version string,
) *Handler {
	return &Handler{
		engine:    engine,
		ingestor:  ingestor,
		store:     st,
		cfg:       cfg,
		version:   version,
		startTime: time.Now(),
	}
}

// Health returns service liveness plus the current store size.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(models.HealthStatus{
		Status:  "ok",
		Version: h.version,
		Records: h.store.Len(),
		Uptime:  time.Since(h.startTime).Seconds(),
	})
}

// Metric is the generic dispatch endpoint: GET /metrics/{name}.
func (h *Handler) Metric(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	filter, err := parseFilter(r)
	if err != nil {
		writeFilterError(rw, err)
		return
	}

	name := chi.URLParam(r, "name")
	data, err := h.engine.Metric(name, filter)
	if err != nil {
		if errors.Is(err, analytics.ErrUnknownMetric) {
			rw.ErrorWithDetails(http.StatusNotFound, ErrCodeNotFound, err.Error(),
				map[string]interface{}{"known_metrics": analytics.MetricNames()})
			return
		}
		rw.InternalError("Failed to compute metric")
		return
	}
	rw.Success(data)
}

// Years lists the distinct years present in the store.
func (h *Handler) Years(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.engine.Years())
}

// TrafficOverview handles GET /analytics/traffic.
func (h *Handler) TrafficOverview(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.TrafficOverview(f) })
}

// HourlyTraffic handles GET /analytics/hourly.
func (h *Handler) HourlyTraffic(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.HourlyTraffic(f) })
}

// DailyVisitors handles GET /analytics/daily.
func (h *Handler) DailyVisitors(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.DailyVisitors(f) })
}

// BounceRate handles GET /analytics/bounce.
func (h *Handler) BounceRate(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.BounceRate(f) })
}

// UniqueVisitors handles GET /analytics/unique-visitors.
func (h *Handler) UniqueVisitors(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.UniqueVisitors(f) })
}

// TopPages handles GET /analytics/top-pages.
func (h *Handler) TopPages(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.TopPages(f) })
}

// Referrers handles GET /analytics/referrers?policy=social|inclusive.
func (h *Handler) Referrers(w http.ResponseWriter, r *http.Request) {
	policy := referrer.ParsePolicy(r.URL.Query().Get("policy"))
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.ReferrerDistribution(f, policy) })
}

// GeoDistribution handles GET /analytics/geo.
func (h *Handler) GeoDistribution(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.GeoDistribution(f) })
}

// SalesSummary handles GET /analytics/sales/summary.
func (h *Handler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.SalesSummary(f) })
}

// MonthlyProfit handles GET /analytics/sales/monthly-profit.
func (h *Handler) MonthlyProfit(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.MonthlyProfit(f) })
}

// WeeklyRevenue handles GET /analytics/sales/weekly-revenue.
func (h *Handler) WeeklyRevenue(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.WeeklyRevenue(f) })
}

// SalesTrafficSources handles GET /analytics/sales/traffic-sources.
func (h *Handler) SalesTrafficSources(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.SalesTrafficSources(f) })
}

// SalesByCountry handles GET /analytics/sales/by-country.
func (h *Handler) SalesByCountry(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.SalesByCountry(f) })
}

// EmployeePerformance handles GET /analytics/sales/employees.
func (h *Handler) EmployeePerformance(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.EmployeePerformance(f) })
}

// ProductPerformance handles GET /analytics/sales/products.
func (h *Handler) ProductPerformance(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.ProductPerformance(f) })
}

// VirtualAssistant handles GET /analytics/virtual-assistant.
func (h *Handler) VirtualAssistant(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.VirtualAssistantShare(f) })
}

// TopAgents handles GET /analytics/top-agents.
func (h *Handler) TopAgents(w http.ResponseWriter, r *http.Request) {
	h.withFilter(w, r, func(f models.Filter) interface{} { return h.engine.TopAgents(f) })
}

// withFilter parses the common filter parameters and writes the computed
// payload.
func (h *Handler) withFilter(w http.ResponseWriter, r *http.Request, compute func(models.Filter) interface{}) {
	rw := NewResponseWriter(w, r)

	filter, err := parseFilter(r)
	if err != nil {
		writeFilterError(rw, err)
		return
	}
	rw.Success(compute(filter))
}

// writeFilterError maps filter parsing failures to API errors.
func writeFilterError(rw *ResponseWriter, err error) {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		rw.ValidationError(verr.Error(), verr.Details())
		return
	}
	rw.BadRequest(err.Error())
}
