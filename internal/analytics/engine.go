// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Package analytics computes the dashboard metrics over the record store.
//
// Every metric takes a models.Filter scoping the computation to one year
// and/or one country. Computations are single linear passes over the
// filtered scope; an empty scope yields zero-valued responses, never a
// panic or NaN.
package analytics

import (
	"errors"
	"fmt"

	"github.com/THB213/AI-Solutions-Dashboard/internal/catalog"
	"github.com/THB213/AI-Solutions-Dashboard/internal/config"
	"github.com/THB213/AI-Solutions-Dashboard/internal/geo"
	"github.com/THB213/AI-Solutions-Dashboard/internal/models"
	"github.com/THB213/AI-Solutions-Dashboard/internal/referrer"
	"github.com/THB213/AI-Solutions-Dashboard/internal/store"
)

// ErrUnknownMetric is returned by Metric for unrecognized metric names.
var ErrUnknownMetric = errors.New("unknown metric")

// Engine computes dashboard metrics.
type Engine struct {
	store     *store.Store
	geo       *geo.Classifier
	referrers *referrer.Classifier
	catalog   *catalog.Catalog
	directory *catalog.Directory
	cfg       config.AnalyticsConfig
}

// New wires an Engine over its collaborators.
func New(
	st *store.Store,
	geoClassifier *geo.Classifier,
	referrerClassifier *referrer.Classifier,
	productCatalog *catalog.Catalog,
	directory *catalog.Directory,
	cfg config.AnalyticsConfig,
) *Engine {
	return &Engine{
		store:     st,
		geo:       geoClassifier,
		referrers: referrerClassifier,
		catalog:   productCatalog,
		directory: directory,
		cfg:       cfg,
	}
}

// predicate builds the store predicate for a filter. Country scoping
// classifies the record IP; unmatched IPs never satisfy a country filter.
func (e *Engine) predicate(f models.Filter) store.Predicate {
	if f.IsZero() {
		return nil
	}
	return func(r *models.LogRecord) bool {
		if f.Year != 0 && r.Year() != f.Year {
			return false
		}
		if f.Country != "" {
			res := e.geo.Classify(r.IP)
			if !res.Matched || res.Country != f.Country {
				return false
			}
		}
		return true
	}
}

// scope materializes the filtered records in insertion order.
func (e *Engine) scope(f models.Filter) []models.LogRecord {
	return e.store.Query(e.predicate(f))
}

// sale resolves a record to the purchased product, when the record is one.
// A sale is a POST request addressing a catalog product under /solutions/.
func (e *Engine) sale(r *models.LogRecord) (catalog.Product, bool) {
	if !r.IsPOST() {
		return catalog.Product{}, false
	}
	return e.catalog.ProductFromPath(r.Path)
}

// Years lists the distinct calendar years in the store, ascending.
// Used by the frontend to populate the year filter.
func (e *Engine) Years() models.YearList {
	years := e.store.Years()
	if years == nil {
		years = []int{}
	}
	return models.YearList{Years: years}
}

// Metric name constants for the generic dispatch endpoint.
const (
	MetricTrafficOverview     = "traffic_overview"
	MetricHourlyTraffic       = "hourly_traffic"
	MetricDailyVisitors       = "daily_visitors"
	MetricBounceRate          = "bounce_rate"
	MetricUniqueVisitors      = "unique_visitors"
	MetricTopPages            = "top_pages"
	MetricReferrers           = "referrer_distribution"
	MetricGeoDistribution     = "geo_distribution"
	MetricSalesSummary        = "sales_summary"
	MetricMonthlyProfit       = "monthly_profit"
	MetricWeeklyRevenue       = "weekly_revenue"
	MetricSalesTrafficSources = "sales_traffic_sources"
	MetricSalesByCountry      = "sales_by_country"
	MetricEmployeePerformance = "employee_performance"
	MetricProductPerformance  = "product_performance"
	MetricVirtualAssistant    = "virtual_assistant"
	MetricTopAgents           = "top_agents"
)

// Metric computes one metric by name. Unknown names return
// ErrUnknownMetric. The referrer distribution uses the social-only policy
// here; the dedicated endpoint accepts a policy parameter.
func (e *Engine) Metric(name string, f models.Filter) (interface{}, error) {
	switch name {
	case MetricTrafficOverview:
		return e.TrafficOverview(f), nil
	case MetricHourlyTraffic:
		return e.HourlyTraffic(f), nil
	case MetricDailyVisitors:
		return e.DailyVisitors(f), nil
	case MetricBounceRate:
		return e.BounceRate(f), nil
	case MetricUniqueVisitors:
		return e.UniqueVisitors(f), nil
	case MetricTopPages:
		return e.TopPages(f), nil
	case MetricReferrers:
		return e.ReferrerDistribution(f, referrer.PolicySocialOnly), nil
	case MetricGeoDistribution:
		return e.GeoDistribution(f), nil
	case MetricSalesSummary:
		return e.SalesSummary(f), nil
	case MetricMonthlyProfit:
		return e.MonthlyProfit(f), nil
	case MetricWeeklyRevenue:
		return e.WeeklyRevenue(f), nil
	case MetricSalesTrafficSources:
		return e.SalesTrafficSources(f), nil
	case MetricSalesByCountry:
		return e.SalesByCountry(f), nil
	case MetricEmployeePerformance:
		return e.EmployeePerformance(f), nil
	case MetricProductPerformance:
		return e.ProductPerformance(f), nil
	case MetricVirtualAssistant:
		return e.VirtualAssistantShare(f), nil
	case MetricTopAgents:
		return e.TopAgents(f), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// MetricNames lists the names Metric accepts.
func MetricNames() []string {
	return []string{
		MetricTrafficOverview,
		MetricHourlyTraffic,
		MetricDailyVisitors,
		MetricBounceRate,
		MetricUniqueVisitors,
		MetricTopPages,
		MetricReferrers,
		MetricGeoDistribution,
		MetricSalesSummary,
		MetricMonthlyProfit,
		MetricWeeklyRevenue,
		MetricSalesTrafficSources,
		MetricSalesByCountry,
		MetricEmployeePerformance,
		MetricProductPerformance,
		MetricVirtualAssistant,
		MetricTopAgents,
	}
}

// ratio returns a×100/b, or 0 when b is 0.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a * 100 / b
}
